package handler

import (
	"testing"

	"github.com/deppfellow/restaurants-api/internal/query"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"-3", -3, false},
		{"007", 7, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"12abc", 0, true},
		{" 1", 0, true},
		{"1e3", 0, true},
		{"0x10", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseID(tt.raw, "bad id")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseID(%q) = %d, want error", tt.raw, got)
				}
				if err.Error() != "bad id" {
					t.Errorf("message = %q, want %q", err.Error(), "bad id")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseID(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGetRequestsValidate(t *testing.T) {
	r := &GetRestaurantRequest{RawID: "9"}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if r.id != 9 {
		t.Errorf("id = %d, want 9", r.id)
	}

	if err := (&GetRestaurantRequest{RawID: "nine"}).Validate(); err == nil || err.Error() != "Please provide valid restaurant id" {
		t.Errorf("restaurant error = %v", err)
	}
	if err := (&GetDishRequest{RawID: "2.0"}).Validate(); err == nil || err.Error() != "Please provide valid dish id" {
		t.Errorf("dish error = %v", err)
	}
}

func TestCuisineRequestValidate(t *testing.T) {
	if err := (&CuisineRequest{}).Validate(); err == nil || err.Error() != "Please provide cuisine" {
		t.Errorf("empty cuisine error = %v", err)
	}
	if err := (&CuisineRequest{Cuisine: "Indian"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestFilterRequestsPassValuesThrough(t *testing.T) {
	r := &RestaurantFilterRequest{IsVeg: "1", IsLuxury: "yes"}
	want := query.RestaurantFilter{IsVeg: "1", IsLuxury: "yes"}
	if got := r.Filter(); got != want {
		t.Errorf("Filter() = %+v, want %+v", got, want)
	}

	d := &DishFilterRequest{IsVeg: "false"}
	if got := d.Filter(); got.IsVeg != "false" {
		t.Errorf("Filter() = %+v", got)
	}
}
