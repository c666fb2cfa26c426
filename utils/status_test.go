package utils

import "testing"

func TestStatusColors(t *testing.T) {
	if got := TreatmentStatusColor("ONGOING"); got != "green" {
		t.Errorf("ONGOING color = %s, want green", got)
	}
	if got := TreatmentStatusColor("UNKNOWN"); got != "gray" {
		t.Errorf("unknown treatment status color = %s, want gray", got)
	}
	if got := DoseStatusColor("NOT_ACCEPTED"); got != "red" {
		t.Errorf("NOT_ACCEPTED color = %s, want red", got)
	}
	if got := PaymentStatusColor(""); got != "gray" {
		t.Errorf("empty payment status color = %s, want gray", got)
	}
	if got := PaymentStatusColor("WAITING_PIX"); got != "yellow" {
		t.Errorf("WAITING_PIX color = %s, want yellow", got)
	}
}
