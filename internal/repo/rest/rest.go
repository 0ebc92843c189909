// Package rest реализует репозитории поверх PostgREST API проекта Supabase.
package rest

import (
	"net/http"
	"net/url"
)

const restPrefix = "/rest/v1/"

// eq собирает фильтр PostgREST вида column=eq.value.
func eq(q url.Values, column, value string) {
	q.Set(column, "eq."+value)
}

func returnRepresentation() http.Header {
	h := http.Header{}
	h.Set("Prefer", "return=representation")
	return h
}

func tablePath(table string) string {
	return restPrefix + url.PathEscape(table)
}
