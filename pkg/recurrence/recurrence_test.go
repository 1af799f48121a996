package recurrence

import (
	"reflect"
	"testing"
)

func TestExpandNonRecurringReturnsStartDate(t *testing.T) {
	got := Expand("2025-06-02", "", false, "", nil)
	if !reflect.DeepEqual(got, []string{"2025-06-02"}) {
		t.Fatalf("expected single start date, got %v", got)
	}
}

func TestExpandDaily(t *testing.T) {
	got := Expand("2025-06-02", "2025-06-05", true, TypeDaily, nil)
	want := []string{"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExpandWeeklyFiltersWeekdays(t *testing.T) {
	// 2025-06-02 - понедельник
	weekdays := map[string]bool{"monday": true, "wednesday": true}
	got := Expand("2025-06-02", "2025-06-08", true, TypeWeekly, weekdays)
	want := []string{"2025-06-02", "2025-06-04"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExpandWeeklyNormalizesCase(t *testing.T) {
	weekdays := map[string]bool{"Monday": true}
	got := Expand("2025-06-02", "2025-06-08", true, TypeWeekly, weekdays)
	want := []string{"2025-06-02"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExpandWeeklyNoSelectedDays(t *testing.T) {
	got := Expand("2025-06-02", "2025-06-08", true, TypeWeekly, nil)
	if len(got) != 0 {
		t.Fatalf("expected no dates without selected weekdays, got %v", got)
	}
}

func TestExpandDegradesOnReversedRange(t *testing.T) {
	got := Expand("2025-06-10", "2025-06-02", true, TypeDaily, nil)
	if !reflect.DeepEqual(got, []string{"2025-06-10"}) {
		t.Fatalf("expected degradation to start date, got %v", got)
	}
}

func TestExpandDegradesOnInvalidEndDate(t *testing.T) {
	got := Expand("2025-06-02", "not-a-date", true, TypeDaily, nil)
	if !reflect.DeepEqual(got, []string{"2025-06-02"}) {
		t.Fatalf("expected degradation to start date, got %v", got)
	}
}

func TestExpandRangeBoundsInclusive(t *testing.T) {
	got := Expand("2025-06-02", "2025-06-02", true, TypeDaily, nil)
	if !reflect.DeepEqual(got, []string{"2025-06-02"}) {
		t.Fatalf("expected single-day range to include the day, got %v", got)
	}
}
