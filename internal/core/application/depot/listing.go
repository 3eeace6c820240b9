package depot

import "strings"

// CustomerListing renders the queue, one customer per line, or
// NoCustomersPlaceholder when it is empty.
func (s *Service) CustomerListing() string {
	customers := s.queue.Snapshot()
	lines := make([]string, 0, len(customers))
	for _, c := range customers {
		lines = append(lines, c.String())
	}
	return listing(lines, NoCustomersPlaceholder)
}

// ParcelListing renders the store in short form, or NoParcelsPlaceholder.
func (s *Service) ParcelListing() string {
	parcels := s.store.All()
	lines := make([]string, 0, len(parcels))
	for _, p := range parcels {
		lines = append(lines, p.DisplayString())
	}
	return listing(lines, NoParcelsPlaceholder)
}

// ProcessedListing renders the processed records, or NoProcessedPlaceholder.
func (s *Service) ProcessedListing() string {
	lines := make([]string, 0, len(s.processed))
	for _, rec := range s.processed {
		lines = append(lines, rec.Text())
	}
	return listing(lines, NoProcessedPlaceholder)
}

func listing(lines []string, placeholder string) string {
	if len(lines) == 0 {
		return placeholder
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
