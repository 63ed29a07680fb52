package handlers

import (
	"fmt"
	"strings"
	"time"
)

const (
	entityDateLayout = "2006-01-02"
	birthdateLayout  = "02-01-2006"
)

// Date crosses the wire as "yyyy-MM-dd"
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(entityDateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(entityDateLayout, s)
	if err != nil {
		return fmt.Errorf("date must look like yyyy-MM-dd: %w", err)
	}
	d.Time = t
	return nil
}

// Birthdate crosses the wire as "dd-MM-yyyy", the display format users type
type Birthdate struct {
	time.Time
}

func (d Birthdate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(birthdateLayout) + `"`), nil
}

func (d *Birthdate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(birthdateLayout, s)
	if err != nil {
		return fmt.Errorf("date must look like dd-MM-yyyy: %w", err)
	}
	d.Time = t
	return nil
}

func datePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{*t}
}

func timePtr(d *Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func birthdatePtr(t *time.Time) *Birthdate {
	if t == nil {
		return nil
	}
	return &Birthdate{*t}
}

func birthTimePtr(d *Birthdate) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
