package services

import (
	"sync"
	"time"

	"expense-insights/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// categoryProfile describes how often and how much a typical household spends on a category
// in one month, in base currency units before scaling
type categoryProfile struct {
	minEntries int
	maxEntries int
	minAmount  float64
	maxAmount  float64
	fixedDay   int
	merchants  []string
}

type expenseGenerator struct {
	mu       sync.Mutex
	faker    *gofakeit.Faker
	profiles map[models.Category]categoryProfile
}

// NewExpenseGenerator creates a generator. A zero seed picks a random one.
func NewExpenseGenerator(seed uint64) ExpenseGeneratorInterface {
	return &expenseGenerator{
		faker:    gofakeit.New(seed),
		profiles: defaultCategoryProfiles(),
	}
}

func defaultCategoryProfiles() map[models.Category]categoryProfile {
	return map[models.Category]categoryProfile{
		models.CategoryGroceries: {
			minEntries: 3, maxEntries: 8, minAmount: 15, maxAmount: 120,
			merchants: []string{"Fresh Market", "Corner Grocer", "Green Basket", "City Supermarket", "Farmers Co-op"},
		},
		models.CategoryRent: {
			minEntries: 1, maxEntries: 1, minAmount: 900, maxAmount: 1800, fixedDay: 1,
		},
		models.CategoryFuel: {
			minEntries: 1, maxEntries: 4, minAmount: 25, maxAmount: 70,
			merchants: []string{"Highway Fuel", "QuickFill", "Metro Petroleum"},
		},
		models.CategoryUtilities: {
			minEntries: 1, maxEntries: 2, minAmount: 40, maxAmount: 150,
			merchants: []string{"Electricity Board", "Water Works", "Gas Distribution"},
		},
		models.CategoryTransport: {
			minEntries: 2, maxEntries: 8, minAmount: 2, maxAmount: 40,
			merchants: []string{"Metro Card", "City Bus", "Ride Share"},
		},
		models.CategoryInternetMobile: {
			minEntries: 1, maxEntries: 1, minAmount: 30, maxAmount: 90, fixedDay: 5,
			merchants: []string{"Broadband Plus", "Mobile Connect"},
		},
	}
}

// GenerateMonth produces one month of expenses for a user, never dated after until.
// scale converts base amounts into the user's currency.
func (g *expenseGenerator) GenerateMonth(userID uuid.UUID, month models.MonthBucket, until time.Time, scale float64) []models.Expense {
	limit := models.MonthOf(until)
	if limit.Before(month) {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	lastDay := month.AddMonths(1).Start().AddDate(0, 0, -1).Day()
	if month == limit {
		lastDay = until.Day()
	}

	var expenses []models.Expense
	for _, category := range models.AllCategories() {
		profile := g.profiles[category]
		entries := g.faker.IntRange(profile.minEntries, profile.maxEntries)

		for i := 0; i < entries; i++ {
			day := profile.fixedDay
			if day == 0 {
				day = g.faker.IntRange(1, lastDay)
			}
			if day > lastDay {
				continue
			}

			amount := decimal.NewFromFloat(g.faker.Price(profile.minAmount*scale, profile.maxAmount*scale)).Round(2)
			if !amount.IsPositive() {
				amount = decimal.NewFromFloat(profile.minAmount * scale).Round(2)
			}

			expenses = append(expenses, models.Expense{
				UserID:      userID,
				Category:    category,
				Amount:      amount,
				ExpenseDate: time.Date(month.Year, month.Month, day, 0, 0, 0, 0, time.UTC),
				Notes:       g.note(profile),
			})
		}
	}

	return expenses
}

// GenerateHistory produces the last months of expenses up to now, oldest month first
func (g *expenseGenerator) GenerateHistory(userID uuid.UUID, months int, now time.Time, scale float64) []models.Expense {
	current := models.MonthOf(now)

	var expenses []models.Expense
	for offset := months - 1; offset >= 0; offset-- {
		expenses = append(expenses, g.GenerateMonth(userID, current.AddMonths(-offset), now, scale)...)
	}
	return expenses
}

func (g *expenseGenerator) HouseholdSize() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.faker.IntRange(1, 5)
}

func (g *expenseGenerator) FullName() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.faker.Name()
}

func (g *expenseGenerator) note(profile categoryProfile) *string {
	if len(profile.merchants) == 0 {
		return nil
	}
	note := g.faker.RandomString(profile.merchants)
	return &note
}
