package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"reflect"
	"strings"

	"ehotel/shared/cache"
	"ehotel/shared/constant"
	"ehotel/shared/dto"
	"ehotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// NextIdentifier allocates the next unused integer id from the ids already on
// file: nil entries are discarded, the maximum is incremented, and an empty
// table yields 1. Two concurrent callers can be handed the same id; the insert
// collides on the primary key. Callers accept that window.
func NextIdentifier(ids []*int) int {
	maxID := 0

	for _, id := range ids {
		if id == nil {
			continue
		}

		if *id > maxID {
			maxID = *id
		}
	}

	return maxID + 1
}

// TransformFields converts the non-zero fields of a request struct into a map
// of columns for a partial update, stamping modified_at.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable cache key from the listing query and
// its filter so distinct page/filter combinations never collide.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	hasher := fnv.New64a()

	raw, err := json.Marshal(struct {
		Params dto.QueryParams
		Where  string
		Args   map[string]any
	}{params, where, args})
	if err == nil {
		_, _ = hasher.Write(raw)
	}

	return fmt.Sprintf("%s:%x", prefix, hasher.Sum64())
}

func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
