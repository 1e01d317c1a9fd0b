package postgres

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/utils"
)

// EntityStatusDefaultSort puts entities needing attention first when callers
// order by status.
var EntityStatusDefaultSort = []string{
	string(domain.StatusPending),
	string(domain.StatusDraft),
	string(domain.StatusRejected),
	string(domain.StatusApproved),
	string(domain.StatusArchived),
}

type addOrderByClauseOptions struct {
	statusColumnName string
	statusesOrder    []string
}

// addOrderByClause translates "column" or "column:direction" conditions into
// an ORDER BY clause. Ordering by "status" sorts by the workflow's status
// priority rather than alphabetically.
func addOrderByClause(db *gorm.DB, conditions []string, options addOrderByClauseOptions, allowedColumns []string) (*gorm.DB, error) {
	var orderByClauses []string
	var vars []interface{}

	for _, orderBy := range conditions {
		if strings.Contains(orderBy, "status") && options.statusColumnName != "" {
			orderByClauses = append(orderByClauses, fmt.Sprintf(`ARRAY_POSITION(ARRAY[?], %s)`, options.statusColumnName))
			vars = append(vars, options.statusesOrder)
			continue
		}

		columnOrder := strings.Split(orderBy, ":")
		columnName := columnOrder[0]
		if !utils.ContainsString(allowedColumns, columnName) {
			return nil, fmt.Errorf("cannot order by column %q", columnName)
		}
		if len(columnOrder) == 1 {
			orderByClauses = append(orderByClauses, fmt.Sprintf(`"%s"`, columnName))
		} else if len(columnOrder) == 2 {
			orderDirection := columnOrder[1]
			if !utils.ContainsString([]string{"asc", "desc"}, orderDirection) {
				return nil, fmt.Errorf("invalid order by direction: %s", orderDirection)
			}
			orderByClauses = append(orderByClauses, fmt.Sprintf(`"%s" %s`, columnName, orderDirection))
		}
	}

	return db.Clauses(clause.OrderBy{
		Expression: clause.Expr{
			SQL:                strings.Join(orderByClauses, ", "),
			Vars:               vars,
			WithoutParentheses: true,
		},
	}), nil
}
