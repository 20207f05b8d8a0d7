package models

import (
	"sync"
	"testing"
	"time"

	"gorm.io/gorm/schema"
)

func TestAdoptWellness_PreservesBothSides(t *testing.T) {
	stress, sleep := 4, 2
	created := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	wellnessRow := Checkin{
		ID:        42,
		UserID:    7,
		Date:      "2026-03-10",
		Stress:    &stress,
		Sleep:     &sleep,
		CreatedAt: created,
	}

	yes := true
	daily := Checkin{
		UserID:            7,
		Date:              "2026-03-10",
		CheckinCompleted:  true,
		ActivityCompleted: true,
		Nutrition:         NutritionAnswers{&yes, &yes, &yes},
		Mood:              "good",
		PointsEarned:      55,
	}
	daily.AdoptWellness(&wellnessRow)

	if daily.ID != 42 {
		t.Errorf("row identity not adopted: id=%d", daily.ID)
	}
	if daily.Stress == nil || *daily.Stress != 4 {
		t.Error("stress rating lost in the merge")
	}
	if daily.Sleep == nil || *daily.Sleep != 2 {
		t.Error("sleep rating lost in the merge")
	}
	if daily.Energy != nil {
		t.Error("energy appeared from nowhere")
	}
	if !daily.CreatedAt.Equal(created) {
		t.Errorf("creation time not preserved: %v", daily.CreatedAt)
	}

	// The daily side must survive untouched.
	if daily.PointsEarned != 55 {
		t.Errorf("points changed in the merge: %d", daily.PointsEarned)
	}
	if !daily.CheckinCompleted || !daily.ActivityCompleted {
		t.Error("completion flags changed in the merge")
	}
	if daily.Nutrition.YesCount() != 3 {
		t.Errorf("nutrition answers changed in the merge: %d yes", daily.Nutrition.YesCount())
	}
	if daily.Mood != "good" {
		t.Errorf("mood changed in the merge: %s", daily.Mood)
	}
}

func TestCheckinColumnNames(t *testing.T) {
	s, err := schema.Parse(&Checkin{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	// Raw SQL predicates elsewhere reference these columns by name; a field
	// rename must show up here before it silently breaks a query.
	for field, column := range map[string]string{
		"CheckinCompleted":  "checkin_completed",
		"ActivityCompleted": "activity_completed",
		"UserID":            "user_id",
		"Date":              "date",
	} {
		f, ok := s.FieldsByName[field]
		if !ok {
			t.Fatalf("field %s missing from schema", field)
		}
		if f.DBName != column {
			t.Errorf("field %s maps to column %q, expected %q", field, f.DBName, column)
		}
	}

	if f := s.LookUpField("completed"); f != nil {
		t.Errorf("unexpected column %q on the checkin table", f.DBName)
	}
}
