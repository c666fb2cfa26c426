package services

import (
	"InjetaClin/models"
	"testing"
)

func contactFixture() []models.Treatment {
	treatment := monthlyTreatment("t1", "p1")
	treatment.Patient.GuardianName = "Marcos Souza"
	treatment.Patient.GuardianEmail = "marcos@example.com"
	treatment.Protocol.Milestones = []models.ProtocolMilestone{
		{Day: 3, Message: "Check for injection site reaction"},
		{Day: 14, Message: "Confirm next application is scheduled"},
	}
	return []models.Treatment{treatment}
}

func TestContactKey(t *testing.T) {
	if got := ContactKey("t1", 14); got != "t1_m_14" {
		t.Errorf("ContactKey = %s, want t1_m_14", got)
	}
}

func TestParseContactKey(t *testing.T) {
	treatmentID, day, err := parseContactKey("treat_abc_m_14")
	if err != nil {
		t.Fatalf("parseContactKey: %v", err)
	}
	if treatmentID != "treat_abc" || day != 14 {
		t.Errorf("parsed %s day %d, want treat_abc day 14", treatmentID, day)
	}

	for _, bad := range []string{"", "_m_3", "t1_m_", "t1_m_x", "t1"} {
		if _, _, err := parseContactKey(bad); err == nil {
			t.Errorf("parseContactKey(%q) should fail", bad)
		}
	}
}

func TestUpcomingContacts(t *testing.T) {
	treatments := contactFixture()
	today := testDay(t, "2024-01-10")

	events := UpcomingContacts(treatments, nil, today)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Sorted by contact date ascending.
	if events[0].ContactID != "t1_m_3" || events[1].ContactID != "t1_m_14" {
		t.Errorf("event order = %s, %s, want t1_m_3 then t1_m_14", events[0].ContactID, events[1].ContactID)
	}
	if events[0].ContactDate != "2024-01-04" || events[0].DiffDays != -6 {
		t.Errorf("first event date %s diff %d, want 2024-01-04 diff -6", events[0].ContactDate, events[0].DiffDays)
	}
	if events[1].GuardianEmail != "marcos@example.com" {
		t.Errorf("guardian email = %s, want marcos@example.com", events[1].GuardianEmail)
	}
}

func TestUpcomingContactsSkipsDismissed(t *testing.T) {
	treatments := contactFixture()
	dismissed := map[string]bool{"t1_m_3": true}

	events := UpcomingContacts(treatments, dismissed, testDay(t, "2024-01-10"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 after dismissal", len(events))
	}
	if events[0].ContactID != "t1_m_14" {
		t.Errorf("remaining event = %s, want t1_m_14", events[0].ContactID)
	}
}

func TestUpcomingContactsSkipsInactiveTreatments(t *testing.T) {
	treatments := contactFixture()
	treatments[0].Status = models.TreatmentSuspended

	if events := UpcomingContacts(treatments, nil, testDay(t, "2024-01-10")); len(events) != 0 {
		t.Errorf("got %d events for a suspended treatment, want 0", len(events))
	}
}

func TestUpcomingContactsDropsLongOverdue(t *testing.T) {
	treatments := contactFixture()
	treatments[0].StartDate = "2023-09-01"

	// Both milestones fall more than 60 days in the past.
	if events := UpcomingContacts(treatments, nil, testDay(t, "2024-01-10")); len(events) != 0 {
		t.Errorf("got %d events more than 60 days overdue, want 0", len(events))
	}
}

func TestTimelineContacts(t *testing.T) {
	treatments := contactFixture()
	other := monthlyTreatment("t2", "p2")
	other.Protocol.Milestones = []models.ProtocolMilestone{{Day: 3, Message: "Check in"}}
	treatments = append(treatments, other)
	today := testDay(t, "2024-01-20")

	events := TimelineContacts(treatments, "p1", nil, today)
	// Day 3 fell on 2024-01-04, sixteen days back, outside the -10 cutoff.
	if len(events) != 1 {
		t.Fatalf("got %d timeline events, want 1", len(events))
	}
	if events[0].ContactID != "t1_m_14" {
		t.Errorf("timeline event = %s, want t1_m_14", events[0].ContactID)
	}
	if events[0].PatientID != "p1" {
		t.Errorf("timeline leaked patient %s", events[0].PatientID)
	}
}

func TestContactEventMonitoringFlag(t *testing.T) {
	treatments := contactFixture()
	treatments[0].Protocol.Category = models.CategoryMonitoring

	events := UpcomingContacts(treatments, nil, testDay(t, "2024-01-10"))
	if len(events) == 0 {
		t.Fatal("expected events")
	}
	if !events[0].IsMonitoring {
		t.Error("monitoring protocol event should carry the monitoring flag")
	}
}
