package core

import "github.com/auto-homepage/docker-homepage-sync/internal/domain"

// MergeDescriptors appends each descriptor whose name is not yet present in
// the document, in input order, and returns the entries it added. Existing
// entries are never updated in place, so the operation is idempotent.
func MergeDescriptors(doc *domain.ServicesDocument, descriptors []domain.ServiceDescriptor) []domain.ServiceDescriptor {
	var added []domain.ServiceDescriptor
	for _, sd := range descriptors {
		if doc.HasEntry(sd.Name) {
			continue
		}
		doc.Containers = append(doc.Containers, sd)
		added = append(added, sd)
	}
	return added
}
