package catalog

import (
	"sort"
	"strings"

	"github.com/nutrishare/backend/internal/i18n"
	"github.com/nutrishare/backend/internal/models"
)

// Project derives the filtered, ordered view of the catalog for the given
// criteria. Pure: the input slice is not modified and the result is a
// fresh slice, recomputed on every call.
//
// Active filters are ANDed. Category keys on both sides go through
// i18n.NormalizeKey before comparison, so "Low Carb" and "lowCarb" match;
// a selection normalizing to "all" matches every recipe.
func Project(recipes []models.Recipe, criteria Criteria) []models.Recipe {
	selected := i18n.NormalizeKey(criteria.Category)
	query := strings.ToLower(criteria.SearchQuery)

	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if selected != "" && selected != "all" && i18n.NormalizeKey(r.Category) != selected {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Title), query) &&
			!strings.Contains(strings.ToLower(r.Description), query) {
			continue
		}
		if criteria.Difficulty != "" && r.Difficulty != criteria.Difficulty {
			continue
		}
		if tr := criteria.PrepTimeRange; tr != nil {
			if r.PrepTime < tr.Min {
				continue
			}
			if tr.Max > 0 && r.PrepTime >= tr.Max {
				continue
			}
		}
		out = append(out, r)
	}

	switch criteria.SortBy {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortPrepTime:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PrepTime < out[j].PrepTime })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}

	return out
}
