package scheduler

import (
	"time"

	"github.com/smartres/smartres/internal/models"
)

// ViewState is the transient presentation state: the month the calendar is
// showing, the selected day, and the pending add confirmation. Nothing here
// is ever persisted.
type ViewState struct {
	CurrentDate  time.Time // month cursor; the day-of-month is irrelevant
	SelectedDate time.Time
	ModalOpen    bool
	TargetSlot   models.SlotTime
}

func NewViewState(now time.Time) ViewState {
	return ViewState{
		CurrentDate:  now,
		SelectedDate: now,
	}
}

// ChangeMonth moves the month cursor by offset months, landing on the first
// day of the resulting month.
func (v *ViewState) ChangeMonth(offset int) {
	v.CurrentDate = time.Date(v.CurrentDate.Year(), v.CurrentDate.Month()+time.Month(offset), 1,
		0, 0, 0, 0, v.CurrentDate.Location())
}

func (v *ViewState) SelectDate(t time.Time) {
	v.SelectedDate = t
}

// OpenModal arms the add confirmation for slot.
func (v *ViewState) OpenModal(slot models.SlotTime) {
	v.TargetSlot = slot
	v.ModalOpen = true
}

func (v *ViewState) CloseModal() {
	v.ModalOpen = false
	v.TargetSlot = ""
}

// MonthGrid lays out the cursor month as whole weeks starting on Sunday.
// Cells outside the month are zero.
func (v ViewState) MonthGrid() [][7]int {
	year, month := v.CurrentDate.Year(), v.CurrentDate.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, v.CurrentDate.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var grid [][7]int
	week := [7]int{}
	col := int(first.Weekday())
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			grid = append(grid, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, week)
	}
	return grid
}
