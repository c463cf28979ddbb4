// Package v1alpha1 holds the request and response models of the load planner HTTP API.
package v1alpha1

import (
	"github.com/google/uuid"
)

// Defines values for RoomType.
const (
	RoomTypeDRY      RoomType = "DRY"
	RoomTypeWET      RoomType = "WET"
	RoomTypeBATHROOM RoomType = "BATHROOM"
)

// Defines values for ReportFormat.
const (
	ReportFormatCsv  ReportFormat = "csv"
	ReportFormatHtml ReportFormat = "html"
	ReportFormatXlsx ReportFormat = "xlsx"
)

// RoomType defines model for Room.Type.
type RoomType string

// ReportFormat defines model for the export format query parameter.
type ReportFormat string

// Room defines model for Room.
type Room struct {
	// Id is assigned by the server when omitted.
	Id        *uuid.UUID `json:"id,omitempty"`
	Name      string     `json:"name" validate:"room_name"`
	Type      RoomType   `json:"type"`
	Area      float64    `json:"area"`
	Perimeter float64    `json:"perimeter"`
}

// Appliance defines model for Appliance.
type Appliance struct {
	Id      *uuid.UUID `json:"id,omitempty"`
	Name    string     `json:"name" validate:"appliance_name"`
	Power   float64    `json:"power"`
	Voltage int        `json:"voltage"`
}

// Plan defines model for Plan.
type Plan struct {
	Rooms      []Room      `json:"rooms" validate:"dive"`
	Appliances []Appliance `json:"appliances" validate:"dive"`
}

// ExportParams defines parameters for ExportReport.
type ExportParams struct {
	Format ReportFormat `json:"format" validate:"report_format"`
}

// Error defines model for Error.
type Error struct {
	// Message Error message
	Message string `json:"message"`

	// Problems lists every invalid field when the plan was rejected
	Problems []string `json:"problems,omitempty"`

	// RequestId Request ID for tracing
	RequestId *string `json:"requestId,omitempty"`
}

// Info defines model for Info.
type Info struct {
	GitCommit   string `json:"gitCommit"`
	VersionName string `json:"versionName"`
}

// Status defines model for Status.
type Status struct {
	Status string `json:"status"`
}
