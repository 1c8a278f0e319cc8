package models

import (
	"encoding/json"
	"time"
)

// ThreatType is the kind of indicator a threat report refers to.
type ThreatType string

const (
	ThreatTypeIP        ThreatType = "ip"
	ThreatTypeEmail     ThreatType = "email"
	ThreatTypeDomain    ThreatType = "domain"
	ThreatTypeFile      ThreatType = "file"
	ThreatTypeURL       ThreatType = "url"
	ThreatTypeUserAgent ThreatType = "user_agent"
)

// ThreatTypes lists every accepted indicator type.
var ThreatTypes = []ThreatType{
	ThreatTypeIP,
	ThreatTypeEmail,
	ThreatTypeDomain,
	ThreatTypeFile,
	ThreatTypeURL,
	ThreatTypeUserAgent,
}

// Valid reports whether t is one of ThreatTypes.
func (t ThreatType) Valid() bool {
	for _, v := range ThreatTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ThreatReportInput holds the submitted fields of a new threat report.
type ThreatReportInput struct {
	IndicatorType    ThreatType `json:"indicator_type"`
	IndicatorAddress string     `json:"indicator_address"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	ThreatActor      *string    `json:"threat_actor"`
	Industry         *string    `json:"industry"`
	Tactic           *string    `json:"tactic"`
	Technique        *string    `json:"technique"`
	Credibility      int        `json:"credibility"`
	AttackLogs       *string    `json:"attack_logs"`
}

// ThreatReportDB represents a persisted threat report.
type ThreatReportDB struct {
	ID               int64      `json:"id" db:"id"`
	IndicatorType    ThreatType `json:"indicator_type" db:"indicator_type"`
	IndicatorAddress string     `json:"indicator_address" db:"indicator_address"`
	FullName         string     `json:"full_name" db:"full_name"`
	Email            string     `json:"email" db:"email"`
	ThreatActor      *string    `json:"threat_actor" db:"threat_actor"`
	Industry         *string    `json:"industry" db:"industry"`
	Tactic           *string    `json:"tactic" db:"tactic"`
	Technique        *string    `json:"technique" db:"technique"`
	Credibility      int        `json:"credibility" db:"credibility"`
	AttackLogs       *string    `json:"attack_logs" db:"attack_logs"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	ModifiedAt       *time.Time `json:"modified_at" db:"modified_at"`
}

// ToBytes returns the canonical JSON encoding of the persisted columns,
// used as the broker message body.
func (r *ThreatReportDB) ToBytes() ([]byte, error) {
	return json.Marshal(r)
}
