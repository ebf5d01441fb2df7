package domain

import "fmt"

type ChecklistItem struct {
	ID          string
	Text        string
	IsCompleted bool
}

type Project struct {
	ID          string
	Name        string
	Description string
	Tags        []string
	Status      string
	Type        string
	Priority    Priority
	Checklist   []ChecklistItem
}

// Validate checks the fields a project must always carry.
func (p *Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.Priority != "" && !ValidPriorities[p.Priority] {
		return fmt.Errorf("project priority %q must be one of HIGH, MEDIUM, LOW", p.Priority)
	}
	return nil
}

// Clone returns a deep copy; tags and checklist are not shared.
func (p Project) Clone() Project {
	if p.Tags != nil {
		tags := make([]string, len(p.Tags))
		copy(tags, p.Tags)
		p.Tags = tags
	}
	if p.Checklist != nil {
		checklist := make([]ChecklistItem, len(p.Checklist))
		copy(checklist, p.Checklist)
		p.Checklist = checklist
	}
	return p
}

// ChecklistProgress returns completed and total checklist counts.
func (p *Project) ChecklistProgress() (done, total int) {
	for _, c := range p.Checklist {
		if c.IsCompleted {
			done++
		}
	}
	return done, len(p.Checklist)
}

// DisplayID returns the id truncated to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
