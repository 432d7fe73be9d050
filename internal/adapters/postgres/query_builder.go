package postgres

import (
	"fmt"
	"strings"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// build возвращает WHERE (может быть пустым) и аргументы
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// escapeLike экранирует спецсимволы LIKE, чтобы префикс geohash сравнивался буквально
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// applyPropertyQuery переводит фильтры списка в WHERE, LIMIT и OFFSET
func applyPropertyQuery(q domain.PropertyQuery) (string, []interface{}) {
	qb := newQueryBuilder()

	if q.Published != nil {
		qb.addCondition("%s = $%d", "published", *q.Published)
	}
	if q.Featured != nil {
		qb.addCondition("%s = $%d", "featured", *q.Featured)
	}
	if q.Type != "" {
		qb.addCondition("%s = $%d", "type", q.Type)
	}
	if near := strings.ToLower(strings.TrimSpace(q.Near)); near != "" {
		qb.addCondition("%s LIKE $%d", "geohash", escapeLike(near)+"%")
	}

	whereClause, args := qb.build()
	query := propertySelect + " " + whereClause + " ORDER BY created_at ASC, id ASC"
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, q.Limit)
	}
	if q.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, q.Offset)
	}
	return query, args
}
