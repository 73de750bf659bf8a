// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"strings"

	"github.com/raahsetu/raah-setu/apierr"
)

// Priority of an emergency contact. Ordering uses Rank, never the tag text.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from lowest to highest rank.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Rank() int {
	for i, v := range Priorities {
		if v == p {
			return i + 1
		}
	}
	return 0
}

func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// ParsePriority returns a Validation error naming the accepted values.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", oneOf("priority", Priorities)
	}
	return p, nil
}

// Severity of an incident report.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

func (s Severity) Rank() int {
	for i, v := range Severities {
		if v == s {
			return i + 1
		}
	}
	return 0
}

func (s Severity) Valid() bool {
	return s.Rank() > 0
}

func ParseSeverity(s string) (Severity, error) {
	v := Severity(s)
	if !v.Valid() {
		return "", oneOf("severity", Severities)
	}
	return v, nil
}

// IncidentStatus progresses reported -> in_progress -> resolved. Only
// reported is ever written by the API.
type IncidentStatus string

const (
	IncidentReported   IncidentStatus = "reported"
	IncidentInProgress IncidentStatus = "in_progress"
	IncidentResolved   IncidentStatus = "resolved"
)

var IncidentStatuses = []IncidentStatus{IncidentReported, IncidentInProgress, IncidentResolved}

func (s IncidentStatus) Rank() int {
	for i, v := range IncidentStatuses {
		if v == s {
			return i + 1
		}
	}
	return 0
}

func (s IncidentStatus) Valid() bool {
	return s.Rank() > 0
}

func ParseIncidentStatus(s string) (IncidentStatus, error) {
	v := IncidentStatus(s)
	if !v.Valid() {
		return "", oneOf("status", IncidentStatuses)
	}
	return v, nil
}

// SosStatus of an SOS alert. Nothing transitions an alert to resolved yet.
type SosStatus string

const (
	SosActive   SosStatus = "active"
	SosResolved SosStatus = "resolved"
)

var SosStatuses = []SosStatus{SosActive, SosResolved}

func (s SosStatus) Rank() int {
	for i, v := range SosStatuses {
		if v == s {
			return i + 1
		}
	}
	return 0
}

func (s SosStatus) Valid() bool {
	return s.Rank() > 0
}

func ParseSosStatus(s string) (SosStatus, error) {
	v := SosStatus(s)
	if !v.Valid() {
		return "", oneOf("status", SosStatuses)
	}
	return v, nil
}

// PriorityOrderSQL maps the priority column to its rank so that
// "ORDER BY <expr> DESC" lists high before medium before low.
var PriorityOrderSQL = rankCase("priority", Priorities)

type ranked interface {
	~string
	Rank() int
}

func rankCase[T ranked](column string, values []T) string {
	var b strings.Builder
	b.WriteString("CASE ")
	b.WriteString(column)
	for i := len(values) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", string(values[i]), values[i].Rank())
	}
	b.WriteString(" ELSE 0 END")
	return b.String()
}

func oneOf[T ~string](field string, values []T) error {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return apierr.Validation(field + " must be one of " + strings.Join(names, ", "))
}
