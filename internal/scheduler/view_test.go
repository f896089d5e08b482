package scheduler

import (
	"testing"
	"time"

	"github.com/smartres/smartres/internal/models"
)

func TestChangeMonth(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		offset    int
		wantYear  int
		wantMonth time.Month
	}{
		{"forward one", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local), 1, 2024, time.July},
		{"back one", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local), -1, 2024, time.May},
		{"across year end", time.Date(2024, time.December, 3, 0, 0, 0, 0, time.Local), 2, 2025, time.February},
		{"across year start", time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local), -1, 2023, time.December},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewState(tt.start)
			v.ChangeMonth(tt.offset)
			if v.CurrentDate.Year() != tt.wantYear || v.CurrentDate.Month() != tt.wantMonth {
				t.Errorf("cursor = %v, want %v %v", v.CurrentDate, tt.wantMonth, tt.wantYear)
			}
			if v.CurrentDate.Day() != 1 {
				t.Errorf("cursor day = %d, want 1", v.CurrentDate.Day())
			}
		})
	}
}

func TestChangeMonthKeepsSelection(t *testing.T) {
	start := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	v := NewViewState(start)
	v.ChangeMonth(3)
	if !v.SelectedDate.Equal(start) {
		t.Errorf("SelectedDate = %v, want %v", v.SelectedDate, start)
	}
}

func TestModalLifecycle(t *testing.T) {
	v := NewViewState(time.Now())
	if v.ModalOpen {
		t.Fatal("modal open before OpenModal")
	}

	v.OpenModal(models.SlotDinner)
	if !v.ModalOpen || v.TargetSlot != models.SlotDinner {
		t.Errorf("after OpenModal: open=%v target=%v", v.ModalOpen, v.TargetSlot)
	}

	v.CloseModal()
	if v.ModalOpen || v.TargetSlot != "" {
		t.Errorf("after CloseModal: open=%v target=%v", v.ModalOpen, v.TargetSlot)
	}
}

func TestMonthGrid(t *testing.T) {
	// June 2024 starts on a Saturday and has 30 days.
	v := NewViewState(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local))
	grid := v.MonthGrid()

	if len(grid) != 6 {
		t.Fatalf("weeks = %d, want 6", len(grid))
	}
	if grid[0][6] != 1 {
		t.Errorf("first Saturday = %d, want 1", grid[0][6])
	}
	for col := 0; col < 6; col++ {
		if grid[0][col] != 0 {
			t.Errorf("leading pad cell %d = %d, want 0", col, grid[0][col])
		}
	}
	if grid[5][0] != 30 {
		t.Errorf("last Sunday = %d, want 30", grid[5][0])
	}

	var days int
	for _, week := range grid {
		for _, day := range week {
			if day != 0 {
				days++
			}
		}
	}
	if days != 30 {
		t.Errorf("day cells = %d, want 30", days)
	}
}
