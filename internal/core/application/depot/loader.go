package depot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"
)

const parcelFieldCount = 6

// LoadResult counts what a load accepted and what it skipped.
type LoadResult struct {
	Loaded  int
	Skipped int
}

// LoadCustomers reads customers from path, one `name,parcelID` per line.
// An unreadable file is returned as an error and leaves the queue unchanged.
func (s *Service) LoadCustomers(ctx context.Context, path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error reading customers", "path", path, "error", err)
		return LoadResult{}, fmt.Errorf("load customers: %w", err)
	}
	defer f.Close()

	return s.LoadCustomersFrom(ctx, f)
}

// LoadCustomersFrom enqueues a customer for each well-formed line of r.
// Only the first comma separates the name from the parcel id. Blank lines are
// ignored; any other line that does not yield a customer is skipped.
func (s *Service) LoadCustomersFrom(ctx context.Context, r io.Reader) (LoadResult, error) {
	var result LoadResult
	err := scanLines(r, func(lineNo int, line string) {
		rawName, rawID, ok := strings.Cut(line, ",")
		if !ok {
			s.skip(ctx, &result, "customer", lineNo, line, errs.NewValueIsInvalidError("customer entry"))
			return
		}

		id, err := kernel.NewParcelID(rawID)
		if err != nil {
			s.skip(ctx, &result, "customer", lineNo, line, err)
			return
		}

		c, err := s.enqueue(rawName, id)
		if err != nil {
			s.skip(ctx, &result, "customer", lineNo, line, err)
			return
		}

		result.Loaded++
		s.events.AddEntry("Loaded Customer: " + c.String())
		s.logger.DebugContext(ctx, "Loaded customer", "customer", c.String())
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error reading customers", "error", err)
		return result, fmt.Errorf("load customers: %w", err)
	}

	s.logger.InfoContext(ctx, "Customers loaded", "loaded", result.Loaded, "skipped", result.Skipped, "queued", s.queue.Size())
	return result, nil
}

// LoadParcels reads parcels from path, one
// `id,length,width,height,weight,daysInDepot` per line.
// An unreadable file is returned as an error and leaves the store unchanged.
func (s *Service) LoadParcels(ctx context.Context, path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error reading parcels", "path", path, "error", err)
		return LoadResult{}, fmt.Errorf("load parcels: %w", err)
	}
	defer f.Close()

	return s.LoadParcelsFrom(ctx, f)
}

// LoadParcelsFrom stores a parcel for each well-formed line of r, replacing any
// parcel already stored under the same id.
func (s *Service) LoadParcelsFrom(ctx context.Context, r io.Reader) (LoadResult, error) {
	var result LoadResult
	err := scanLines(r, func(lineNo int, line string) {
		p, err := parseParcel(line)
		if err != nil {
			s.skip(ctx, &result, "parcel", lineNo, line, err)
			return
		}

		s.store.Put(p)
		result.Loaded++
		s.events.AddEntry("Loaded Parcel: " + p.String())
		s.logger.DebugContext(ctx, "Loaded parcel", "parcel", p.String())
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error reading parcels", "error", err)
		return result, fmt.Errorf("load parcels: %w", err)
	}

	s.logger.InfoContext(ctx, "Parcels loaded", "loaded", result.Loaded, "skipped", result.Skipped, "stored", s.store.Len())
	return result, nil
}

func (s *Service) skip(ctx context.Context, result *LoadResult, entity string, lineNo int, line string, cause error) {
	result.Skipped++
	s.logger.WarnContext(ctx, "Skipping invalid "+entity+" entry",
		"line_no", lineNo, "line", line, "error", cause)
}

// scanLines calls fn with every non-blank line of r, trimmed.
func scanLines(r io.Reader, fn func(lineNo int, line string)) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fn(lineNo, line)
	}
	return scanner.Err()
}

func parseParcel(line string) (*parcel.Parcel, error) {
	fields := strings.Split(line, ",")
	if len(fields) != parcelFieldCount {
		return nil, errs.NewValueIsOutOfRangeError("field count", len(fields), parcelFieldCount, parcelFieldCount)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	id, err := kernel.NewParcelID(fields[0])
	if err != nil {
		return nil, err
	}

	length, lengthErr := parseNumber("length", fields[1])
	width, widthErr := parseNumber("width", fields[2])
	height, heightErr := parseNumber("height", fields[3])
	weight, weightErr := parseNumber("weight", fields[4])
	days, daysErr := strconv.Atoi(fields[5])
	if daysErr != nil {
		daysErr = errs.NewValueIsInvalidErrorWithCause("daysInDepot", daysErr)
	}
	if err := errors.Join(lengthErr, widthErr, heightErr, weightErr, daysErr); err != nil {
		return nil, err
	}

	return parcel.NewParcel(id, length, width, height, weight, days)
}

func parseNumber(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}
