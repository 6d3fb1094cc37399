package pgsql

import (
	"strconv"
	"strings"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
)

// whereBuilder accumulates AND-ed predicates written with ? placeholders and
// renumbers them as $n in the order they are added.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(clause string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		clause = strings.Replace(clause, "?", "$"+strconv.Itoa(len(w.args)), 1)
	}
	w.clauses = append(w.clauses, clause)
}

// next returns the placeholder for the argument that would be appended next.
func (w *whereBuilder) next() string {
	return "$" + strconv.Itoa(len(w.args)+1)
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a contains pattern for ILIKE.
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

func direction(order domain.SortOrder) string {
	if order == domain.SortDesc {
		return "DESC"
	}
	return "ASC"
}

var entrySortColumns = map[string]string{
	"date":      "entry_date",
	"number":    "entry_number",
	"reference": "reference",
	"createdAt": "created_at",
}

func entryOrderBy(sortBy string, order domain.SortOrder) string {
	col, ok := entrySortColumns[sortBy]
	if !ok {
		col = "entry_date"
	}
	dir := direction(order)
	if col == "entry_number" {
		return " ORDER BY entry_number " + dir
	}
	return " ORDER BY " + col + " " + dir + ", entry_number " + dir
}

var ledgerSortColumns = map[string][]string{
	"date":    {"e.entry_date", "e.entry_number", "l.line_no"},
	"number":  {"e.entry_number", "l.line_no"},
	"account": {"a.number", "e.entry_date", "e.entry_number", "l.line_no"},
}

func ledgerOrderBy(sortBy string, order domain.SortOrder) string {
	cols, ok := ledgerSortColumns[sortBy]
	if !ok {
		cols = ledgerSortColumns["date"]
	}
	dir := direction(order)
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " " + dir
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func statusStrings(statuses []domain.EntryStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
