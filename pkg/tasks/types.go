package tasks

import (
	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
)

// Sub-resource path segments nested under a stored document.
const (
	SubresourceProperties         = "documentProperties"
	SubresourceTasks              = "tasks"
	SubresourceTaskLinks          = "taskLinks"
	SubresourceOutlineCodes       = "outlineCodes"
	SubresourceExtendedAttributes = "extendedAttributes"
)

// Link is a hypermedia reference the server attaches to list items.
type Link struct {
	Href  string `json:"Href,omitempty" yaml:"href,omitempty"`
	Rel   string `json:"Rel,omitempty" yaml:"rel,omitempty"`
	Type  string `json:"Type,omitempty" yaml:"type,omitempty"`
	Title string `json:"Title,omitempty" yaml:"title,omitempty"`
}

// Property is a single document property.
type Property struct {
	Name  string `json:"Name" yaml:"name"`
	Value string `json:"Value" yaml:"value"`
}

// TaskItem is a task as it appears in a task list.
type TaskItem struct {
	Link *Link  `json:"Link,omitempty" yaml:"link,omitempty"`
	UID  int    `json:"Uid" yaml:"uid"`
	ID   int    `json:"Id" yaml:"id"`
	Name string `json:"Name" yaml:"name"`
}

// Task is a single task with its scheduling fields.
type Task struct {
	UID             int     `json:"Uid" yaml:"uid"`
	ID              int     `json:"Id" yaml:"id"`
	Name            string  `json:"Name" yaml:"name"`
	Start           Date    `json:"Start" yaml:"start"`
	Finish          Date    `json:"Finish" yaml:"finish"`
	Duration        string  `json:"Duration,omitempty" yaml:"duration,omitempty"`
	PercentComplete int     `json:"PercentComplete" yaml:"percentComplete"`
	OutlineLevel    int     `json:"OutlineLevel" yaml:"outlineLevel"`
	IsSummary       bool    `json:"IsSummary" yaml:"isSummary"`
	IsMilestone     bool    `json:"IsMilestone" yaml:"isMilestone"`
	Priority        int     `json:"Priority,omitempty" yaml:"priority,omitempty"`
	Cost            float64 `json:"Cost,omitempty" yaml:"cost,omitempty"`
	Notes           string  `json:"NotesText,omitempty" yaml:"notes,omitempty"`
	SubtasksUIDs    []int   `json:"SubtasksUids,omitempty" yaml:"subtasksUids,omitempty"`
}

// TaskLink is a dependency between two tasks.
type TaskLink struct {
	Link             *Link  `json:"Link,omitempty" yaml:"link,omitempty"`
	Index            int    `json:"Index" yaml:"index"`
	PredecessorUID   int    `json:"PredecessorUid" yaml:"predecessorUid"`
	SuccessorUID     int    `json:"SuccessorUid" yaml:"successorUid"`
	LinkType         string `json:"LinkType,omitempty" yaml:"linkType,omitempty"`
	Lag              int    `json:"Lag,omitempty" yaml:"lag,omitempty"`
	LagFormat        string `json:"LagFormat,omitempty" yaml:"lagFormat,omitempty"`
	CrossProjectName string `json:"CrossProjectName,omitempty" yaml:"crossProjectName,omitempty"`
}

// OutlineCodeItem is an outline code as it appears in a list.
type OutlineCodeItem struct {
	Link  *Link  `json:"Link,omitempty" yaml:"link,omitempty"`
	Index int    `json:"Index" yaml:"index"`
	Alias string `json:"Alias,omitempty" yaml:"alias,omitempty"`
	Name  string `json:"Name,omitempty" yaml:"name,omitempty"`
}

// OutlineCodeItems is the outline code list payload.
type OutlineCodeItems struct {
	List []OutlineCodeItem `json:"List" yaml:"list"`
}

// OutlineValue is one entry in an outline code's lookup table.
type OutlineValue struct {
	ValueID     int    `json:"ValueId" yaml:"valueId"`
	Value       string `json:"Value" yaml:"value"`
	Description string `json:"Description,omitempty" yaml:"description,omitempty"`
	ParentID    int    `json:"ParentValueId,omitempty" yaml:"parentValueId,omitempty"`
}

// OutlineCode is a single outline code definition.
type OutlineCode struct {
	GUID              string         `json:"Guid,omitempty" yaml:"guid,omitempty"`
	FieldID           string         `json:"FieldId,omitempty" yaml:"fieldId,omitempty"`
	FieldName         string         `json:"FieldName,omitempty" yaml:"fieldName,omitempty"`
	Alias             string         `json:"Alias,omitempty" yaml:"alias,omitempty"`
	AllLevelsRequired bool           `json:"AllLevelsRequired" yaml:"allLevelsRequired"`
	Enterprise        bool           `json:"Enterprise" yaml:"enterprise"`
	OnlyLeaves        bool           `json:"OnlyLeaves" yaml:"onlyLeaves"`
	Values            []OutlineValue `json:"Values,omitempty" yaml:"values,omitempty"`
}

// ExtendedAttributeItem is an extended attribute as it appears in a list.
type ExtendedAttributeItem struct {
	Link    *Link  `json:"Link,omitempty" yaml:"link,omitempty"`
	Index   int    `json:"Index" yaml:"index"`
	FieldID string `json:"FieldId,omitempty" yaml:"fieldId,omitempty"`
	Name    string `json:"Name,omitempty" yaml:"name,omitempty"`
}

// ExtendedAttributeItems is the extended attribute list payload.
type ExtendedAttributeItems struct {
	List []ExtendedAttributeItem `json:"List" yaml:"list"`
}

// ExtendedAttribute is a single extended attribute definition.
type ExtendedAttribute struct {
	FieldID      string `json:"FieldId,omitempty" yaml:"fieldId,omitempty"`
	FieldName    string `json:"FieldName,omitempty" yaml:"fieldName,omitempty"`
	Alias        string `json:"Alias,omitempty" yaml:"alias,omitempty"`
	CfType       string `json:"CfType,omitempty" yaml:"cfType,omitempty"`
	ElementType  string `json:"ElementType,omitempty" yaml:"elementType,omitempty"`
	Formula      string `json:"Formula,omitempty" yaml:"formula,omitempty"`
	DefaultValue string `json:"DefaultValue,omitempty" yaml:"defaultValue,omitempty"`
	CreatedAt    Date   `json:"CreationDate" yaml:"creationDate"`
}

// Response schemas. Each one names the single payload field its endpoint
// carries next to the envelope code.

// PropertiesResponse is returned by GET documentProperties.
type PropertiesResponse struct {
	cloud.EnvelopeHeader
	Properties struct {
		List []Property `json:"List"`
	} `json:"Properties"`
}

// TaskItemsResponse is returned by GET tasks.
type TaskItemsResponse struct {
	cloud.EnvelopeHeader
	Tasks struct {
		TaskItem []TaskItem `json:"TaskItem"`
	} `json:"Tasks"`
}

// TaskResponse is returned by GET tasks/{id}.
type TaskResponse struct {
	cloud.EnvelopeHeader
	Task Task `json:"Task"`
}

// TaskLinksResponse is returned by GET taskLinks.
type TaskLinksResponse struct {
	cloud.EnvelopeHeader
	TaskLinks []TaskLink `json:"TaskLinks"`
}

// OutlineCodesResponse is returned by GET outlineCodes.
type OutlineCodesResponse struct {
	cloud.EnvelopeHeader
	OutlineCodes OutlineCodeItems `json:"OutlineCodes"`
}

// OutlineCodeResponse is returned by GET outlineCodes/{id}.
type OutlineCodeResponse struct {
	cloud.EnvelopeHeader
	OutlineCode OutlineCode `json:"OutlineCode"`
}

// ExtendedAttributesResponse is returned by GET extendedAttributes.
type ExtendedAttributesResponse struct {
	cloud.EnvelopeHeader
	ExtendedAttributes ExtendedAttributeItems `json:"ExtendedAttributes"`
}

// ExtendedAttributeResponse is returned by GET extendedAttributes/{id}.
type ExtendedAttributeResponse struct {
	cloud.EnvelopeHeader
	ExtendedAttribute ExtendedAttribute `json:"ExtendedAttribute"`
}
