package algorithms

import (
	"errors"
	"sort"
	"strings"

	"celobuddy/internal/models"
)

// SwipeAction - действие основателя над текущей карточкой
type SwipeAction string

const (
	ActionPass     SwipeAction = "pass"
	ActionInterest SwipeAction = "interest"
)

var (
	ErrExhausted     = errors.New("swipe session is exhausted")
	ErrUnknownAction = errors.New("unknown swipe action")
)

// SwipeState - курсор по ленте из Total карточек.
// Showing(i) при Cursor < Total, Exhausted при Cursor == Total.
type SwipeState struct {
	Cursor int
	Total  int
}

func NewSwipeState(total int) SwipeState {
	if total < 0 {
		total = 0
	}
	return SwipeState{Total: total}
}

func (s SwipeState) Exhausted() bool {
	return s.Cursor >= s.Total
}

// Current возвращает индекс показываемой карточки
func (s SwipeState) Current() (int, bool) {
	if s.Exhausted() {
		return 0, false
	}
	return s.Cursor, true
}

// Remaining - сколько карточек осталось, включая текущую
func (s SwipeState) Remaining() int {
	if s.Exhausted() {
		return 0
	}
	return s.Total - s.Cursor
}

// Apply выполняет переход. Pass и Interest двигают курсор одинаково,
// запись Match для Interest делает сервис.
func (s SwipeState) Apply(action SwipeAction) (SwipeState, error) {
	switch action {
	case ActionPass, ActionInterest:
	default:
		return s, ErrUnknownAction
	}
	if s.Exhausted() {
		return s, ErrExhausted
	}
	return SwipeState{Cursor: s.Cursor + 1, Total: s.Total}, nil
}

// PickNeedForCategory выбирает активную потребность под категорию возможности.
// При нескольких кандидатах берется самая свежая (created_at DESC, затем id DESC).
func PickNeedForCategory(needs []models.Need, category string) (*models.Need, bool) {
	candidates := make([]models.Need, 0, len(needs))
	for _, n := range needs {
		if n.IsActive && strings.EqualFold(string(n.Category), category) {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].CreatedAt.Equal(candidates[j].CreatedAt) {
			return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
		}
		return candidates[i].ID > candidates[j].ID
	})

	picked := candidates[0]
	return &picked, true
}

// ActiveCategories - уникальные категории активных потребностей, в порядке первого появления
func ActiveCategories(needs []models.Need) []string {
	seen := make(map[string]bool, len(needs))
	var out []string
	for _, n := range needs {
		if !n.IsActive {
			continue
		}
		c := string(n.Category)
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
