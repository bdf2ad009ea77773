package calculations

import "testing"

func TestPriceScheduleDistributesInterestEqually(t *testing.T) {
	for n := 1; n <= 36; n++ {
		result := PriceSchedule(1000, n, 20)

		sum := 0.0
		for _, p := range result.Parcels {
			if !almostEqual(p.Interest, result.TotalInterest/float64(n)) {
				t.Errorf("n=%d parcel %d: interest %f, want %f", n, p.Number, p.Interest, result.TotalInterest/float64(n))
			}
			sum += p.Interest
		}
		if !almostEqual(sum, result.TotalInterest) {
			t.Errorf("n=%d: interest sum %f != total %f", n, sum, result.TotalInterest)
		}
	}
}

func TestPriceScheduleEchoesRate(t *testing.T) {
	result := PriceSchedule(2500, 7, 13.7)
	if result.InterestPercentage != 13.7 {
		t.Errorf("expected echoed rate 13.7, got %f", result.InterestPercentage)
	}
	if result.Input.Type != LoanTypePrice || result.Input.FixedParcelValue != nil {
		t.Errorf("unexpected echoed input %+v", result.Input)
	}
}
