package postgres

import "github.com/oapi-codegen/nullable"

// setNullable records v under column when the caller supplied it; an explicit
// null becomes SQL NULL.
func setNullable[T any](changes map[string]any, column string, v nullable.Nullable[T]) {
	if !v.IsSpecified() {
		return
	}
	if v.IsNull() {
		changes[column] = nil
		return
	}
	changes[column] = v.MustGet()
}
