package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"expense-insights/internal/models"

	"gorm.io/gorm"
)

// DefaultMinUsersPerGroup is the smallest population a category average is reported for
const DefaultMinUsersPerGroup = 3

// CommunityAggregateRepository runs the population-level aggregate queries.
// Each user's expenses are first summed per category and month, so every user
// weighs the same in an average no matter how many records they entered.
type CommunityAggregateRepository struct {
	db       *gorm.DB
	minUsers int
}

// NewCommunityAggregateRepository creates a new aggregate repository.
// minUsers below 1 falls back to DefaultMinUsersPerGroup.
func NewCommunityAggregateRepository(db *gorm.DB, minUsers int) CommunityAggregateRepositoryInterface {
	if minUsers < 1 {
		minUsers = DefaultMinUsersPerGroup
	}
	return &CommunityAggregateRepository{db: db, minUsers: minUsers}
}

// GetCategoryAverages returns one row per category per month with data in scope.
// Every returned month carries all categories; categories nobody reported, and
// groups below the minimum size, come back with a null average.
func (r *CommunityAggregateRepository) GetCategoryAverages(ctx context.Context, scope models.LocationScope) ([]models.CategoryAverageRow, error) {
	userTotals, args, err := r.userTotalsCTE(scope)
	if err != nil {
		return nil, err
	}

	query := userTotals + `
		SELECT
			category,
			month,
			COUNT(DISTINCT user_id) AS user_count,
			CASE WHEN COUNT(DISTINCT user_id) >= ? THEN ROUND(AVG(total), 2) END AS avg_amount
		FROM user_totals
		GROUP BY category, month
		ORDER BY month ASC, category ASC`
	args = append(args, r.minUsers)

	var rows []models.CategoryAverageRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get category averages: %w", err)
	}

	return densifyCategoryAverages(rows), nil
}

// GetCostOfLivingIndex returns one row per month with data in scope, oldest first.
// The index is the weighted sum of the qualifying category averages of that month,
// null when no category qualified.
func (r *CommunityAggregateRepository) GetCostOfLivingIndex(ctx context.Context, scope models.LocationScope) ([]models.CostOfLivingIndexRow, error) {
	userTotals, args, err := r.userTotalsCTE(scope)
	if err != nil {
		return nil, err
	}

	query := userTotals + fmt.Sprintf(`,
		category_averages AS (
			SELECT category, month, AVG(total) AS avg_amount
			FROM user_totals
			GROUP BY category, month
			HAVING COUNT(DISTINCT user_id) >= ?
		),
		month_users AS (
			SELECT month, COUNT(DISTINCT user_id) AS user_count
			FROM user_totals
			GROUP BY month
		)
		SELECT
			mu.month AS month,
			mu.user_count AS user_count,
			ROUND(SUM(ca.avg_amount * %s), 2) AS cost_index
		FROM month_users mu
		LEFT JOIN category_averages ca ON ca.month = mu.month
		GROUP BY mu.month, mu.user_count
		ORDER BY mu.month ASC`, categoryWeightExpr("ca.category"))
	args = append(args, r.minUsers)

	var rows []models.CostOfLivingIndexRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get cost of living index: %w", err)
	}

	return rows, nil
}

// userTotalsCTE builds the per-user category month sums for a scope
func (r *CommunityAggregateRepository) userTotalsCTE(scope models.LocationScope) (string, []interface{}, error) {
	scope = scope.Normalize()
	if err := scope.Validate(); err != nil {
		return "", nil, err
	}

	where, args := scopeFilter(scope)
	month := monthExpr(r.db.Dialector.Name(), "e.expense_date")

	query := fmt.Sprintf(`
		WITH user_totals AS (
			SELECT
				e.user_id AS user_id,
				e.category AS category,
				%[1]s AS month,
				SUM(e.amount) AS total
			FROM expenses e
			JOIN users u ON u.id = e.user_id AND u.deleted_at IS NULL
			JOIN locations l ON l.id = u.location_id
			WHERE e.deleted_at IS NULL AND %[2]s
			GROUP BY e.user_id, e.category, %[1]s
		)`, month, where)

	return query, args, nil
}

func scopeFilter(scope models.LocationScope) (string, []interface{}) {
	clauses := []string{"LOWER(l.country) = LOWER(?)"}
	args := []interface{}{scope.Country}

	if scope.State != "" {
		clauses = append(clauses, "LOWER(l.state) = LOWER(?)")
		args = append(args, scope.State)
	}
	if scope.City != "" {
		clauses = append(clauses, "LOWER(l.city) = LOWER(?)")
		args = append(args, scope.City)
	}

	return strings.Join(clauses, " AND "), args
}

// monthExpr renders a "YYYY-MM" key expression for the given dialect
func monthExpr(dialect, column string) string {
	switch dialect {
	case "sqlite":
		return fmt.Sprintf("strftime('%%Y-%%m', %s)", column)
	default:
		return fmt.Sprintf("to_char(date_trunc('month', %s), 'YYYY-MM')", column)
	}
}

// categoryWeightExpr maps a category column to its index weight
func categoryWeightExpr(column string) string {
	var b strings.Builder
	b.WriteString("CASE ")
	b.WriteString(column)
	for _, cfg := range models.CategoryConfigs() {
		fmt.Fprintf(&b, " WHEN '%s' THEN %s", cfg.Category, cfg.Weight.String())
	}
	b.WriteString(" ELSE 0 END")
	return b.String()
}

// densifyCategoryAverages fills every month up to the full category set in
// enumeration order. Unknown categories are dropped.
func densifyCategoryAverages(rows []models.CategoryAverageRow) []models.CategoryAverageRow {
	if len(rows) == 0 {
		return []models.CategoryAverageRow{}
	}

	byMonth := make(map[string]map[models.Category]models.CategoryAverageRow)
	for _, row := range rows {
		if !models.IsValidCategory(string(row.Category)) {
			continue
		}
		if byMonth[row.Month] == nil {
			byMonth[row.Month] = make(map[models.Category]models.CategoryAverageRow)
		}
		byMonth[row.Month][row.Category] = row
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	categories := models.AllCategories()
	dense := make([]models.CategoryAverageRow, 0, len(months)*len(categories))
	for _, month := range months {
		for _, category := range categories {
			row, ok := byMonth[month][category]
			if !ok {
				row = models.CategoryAverageRow{Category: category, Month: month}
			}
			dense = append(dense, row)
		}
	}

	return dense
}
