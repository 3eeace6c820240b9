package ports

import "depot/internal/core/domain/model/record"

// Metrics observes depot outcomes.
type Metrics interface {
	// ParcelReleased records a processed or collected parcel and its fee.
	ParcelReleased(kind record.Kind, fee float64)

	// ParcelNotFound records a processing or collection attempt for an absent parcel.
	ParcelNotFound(kind record.Kind)

	// QueueEmpty records a processing attempt on an empty queue.
	QueueEmpty()
}
