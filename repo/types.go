package repo

import (
	"fmt"
	"strings"
)

// ModelType is the closed set of entity types served by the repository.
type ModelType string

const (
	TypeInformationModel ModelType = "InformationModel"
	TypeFunctionblock    ModelType = "Functionblock"
	TypeDatatype         ModelType = "Datatype"
	TypeMapping          ModelType = "Mapping"
)

// ModelID identifies one versioned model. Namespace, name and version form
// the composite key; Pretty carries the server's canonical wire form when
// the id came off the wire.
type ModelID struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	Pretty    string `json:"prettyFormat"`
}

// PrettyFormat returns the canonical wire identifier, preferring the
// server-supplied form.
func (id ModelID) PrettyFormat() string {
	if id.Pretty != "" {
		return id.Pretty
	}
	return fmt.Sprintf("%s.%s:%s", id.Namespace, id.Name, id.Version)
}

// UsingReference renders the DSL import statement for this model.
func (id ModelID) UsingReference() string {
	return fmt.Sprintf("using %s.%s;%s", id.Namespace, id.Name, id.Version)
}

// ParseModelID splits a "namespace.Name:version" wire identifier.
func ParseModelID(s string) (ModelID, error) {
	rest, version, ok := strings.Cut(s, ":")
	if !ok || version == "" {
		return ModelID{}, fmt.Errorf("model id %q: missing version", s)
	}
	dot := strings.LastIndex(rest, ".")
	if dot <= 0 || dot == len(rest)-1 {
		return ModelID{}, fmt.Errorf("model id %q: missing namespace or name", s)
	}
	return ModelID{
		Namespace: rest[:dot],
		Name:      rest[dot+1:],
		Version:   version,
		Pretty:    s,
	}, nil
}

// ModelInfo is the entity payload returned by the model endpoint. Raw DSL
// content is not part of it; it is fetched separately via GetModelContent.
type ModelInfo struct {
	ID               ModelID           `json:"id"`
	Type             ModelType         `json:"type"`
	Author           string            `json:"author"`
	Released         bool              `json:"released"`
	State            string            `json:"state"`
	HasImage         bool              `json:"hasImage"`
	PlatformMappings map[string]string `json:"platformMappings"`
	References       []ModelID         `json:"references"`
	ReferencedBy     []ModelID         `json:"referencedBy"`
}

// ValidationIssue is one structured finding from a failed save.
type ValidationIssue struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
}

// ValidationResult is the response to a content save.
type ValidationResult struct {
	Valid            bool              `json:"valid"`
	Message          string            `json:"message"`
	ValidationIssues []ValidationIssue `json:"validationIssues"`
}

// Attachment describes one file attached to a model.
type Attachment struct {
	FileName string `json:"filename"`
	Size     int64  `json:"size"`
}

// Policy is one access-policy entry on a model.
type Policy struct {
	PrincipalID   string `json:"principalId"`
	PrincipalType string `json:"principalType"`
	Permission    string `json:"permission"`
}

// WorkflowAction describes one transition available from the current state.
type WorkflowAction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WorkflowModel is the workflow descriptor for a model.
type WorkflowModel struct {
	State   string           `json:"state"`
	Actions []WorkflowAction `json:"actions"`
}

// WorkflowResponse reports the outcome of a transition. HasErrors with a
// message means the transition was rejected by the workflow, not the
// transport.
type WorkflowResponse struct {
	HasErrors    bool   `json:"hasErrors"`
	ErrorMessage string `json:"errorMessage"`
}

// UploadResult is the response to an attachment upload.
type UploadResult struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
}

// Generator is one entry of the generator catalog.
type Generator struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// HasTag reports whether the generator carries the given catalog tag.
func (g Generator) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Comment is one comment on a model.
type Comment struct {
	ModelID string `json:"modelId"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Content string `json:"content"`
}
