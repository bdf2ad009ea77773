package calculations

import "testing"

func TestInterestOnlyScheduleKeepsBalance(t *testing.T) {
	cases := []struct {
		principal float64
		parcels   int
		rate      float64
	}{
		{5000, 6, 5},
		{1234.56, 36, 2.75},
		{0.01, 1, 1000},
	}

	for _, c := range cases {
		result := InterestOnlySchedule(c.principal, c.parcels, c.rate)
		if len(result.Parcels) != c.parcels+1 {
			t.Fatalf("expected %d records, got %d", c.parcels+1, len(result.Parcels))
		}
		for _, p := range result.Parcels[:c.parcels] {
			if p.Balance != c.principal {
				t.Errorf("parcel %d: balance %f, want %f", p.Number, p.Balance, c.principal)
			}
			if p.Principal != 0 {
				t.Errorf("parcel %d: should not amortize", p.Number)
			}
		}
		last := result.Parcels[c.parcels]
		if last.Number != c.parcels+1 || last.Value != c.principal || last.Balance != 0 {
			t.Errorf("unexpected final record %+v", last)
		}
	}
}
