package model

// Class is one entry of the weekly schedule.  The catalog is static: it is
// compiled into the binary and never persisted, and bookings reference it by
// the small integer ID.
type Class struct {
	ID         int    `json:"id"`
	Day        string `json:"day"`
	Time       string `json:"time"`
	Title      string `json:"title"`
	Instructor string `json:"instructor"`
	Level      string `json:"level"`
	Spots      int    `json:"spots"`
}

// Classes returns the fixed weekly schedule: pro wrestling, boxing and
// fitness sessions.  Callers receive a fresh slice and may reorder it freely.
func Classes() []Class {
	return []Class{
		// pro wrestling
		{ID: 1, Day: "Monday", Time: "6:00 PM - 8:00 PM", Title: "Beginner Pro Wrestling", Instructor: "Coach Mike", Level: "Beginner", Spots: 8},
		{ID: 2, Day: "Monday", Time: "8:00 PM - 10:00 PM", Title: "Advanced Pro Wrestling", Instructor: "Coach Sarah", Level: "Advanced", Spots: 5},
		{ID: 3, Day: "Tuesday", Time: "7:00 PM - 9:00 PM", Title: "High-Flying & Lucha", Instructor: "Coach James", Level: "Intermediate", Spots: 6},
		{ID: 4, Day: "Wednesday", Time: "6:00 PM - 8:00 PM", Title: "Ring Psychology & Promos", Instructor: "Coach Mike", Level: "All Levels", Spots: 10},
		{ID: 5, Day: "Thursday", Time: "7:00 PM - 9:00 PM", Title: "Technical Wrestling", Instructor: "Coach Sarah", Level: "Intermediate", Spots: 7},
		{ID: 6, Day: "Friday", Time: "6:00 PM - 8:00 PM", Title: "Pro Wrestling Fundamentals", Instructor: "Coach Mike", Level: "Beginner", Spots: 8},
		{ID: 7, Day: "Friday", Time: "8:00 PM - 10:00 PM", Title: "Pro Wrestling Sparring", Instructor: "All Coaches", Level: "Advanced", Spots: 10},
		{ID: 8, Day: "Saturday", Time: "10:00 AM - 12:00 PM", Title: "Pro Pathway Weekend Training", Instructor: "Coach James", Level: "All Levels", Spots: 15},
		// boxing
		{ID: 9, Day: "Monday", Time: "5:00 PM - 6:30 PM", Title: "Boxing Beginners", Instructor: "Coach Tony", Level: "Beginner", Spots: 12},
		{ID: 10, Day: "Tuesday", Time: "6:00 PM - 7:30 PM", Title: "Advanced Boxing", Instructor: "Coach Tony", Level: "Advanced", Spots: 8},
		{ID: 11, Day: "Wednesday", Time: "5:00 PM - 6:30 PM", Title: "Boxing Technique", Instructor: "Coach Marcus", Level: "Intermediate", Spots: 10},
		{ID: 12, Day: "Thursday", Time: "6:00 PM - 7:30 PM", Title: "Boxing Sparring", Instructor: "Coach Tony", Level: "Advanced", Spots: 6},
		{ID: 13, Day: "Saturday", Time: "9:00 AM - 10:30 AM", Title: "Self-Defense Boxing", Instructor: "Coach Marcus", Level: "All Levels", Spots: 15},
		// fitness
		{ID: 14, Day: "Wednesday", Time: "8:00 PM - 10:00 PM", Title: "Strength & Conditioning", Instructor: "Coach Tony", Level: "All Levels", Spots: 12},
		{ID: 15, Day: "Saturday", Time: "2:00 PM - 4:00 PM", Title: "Pro Athlete Training", Instructor: "Coach Sarah", Level: "Advanced", Spots: 5},
	}
}
