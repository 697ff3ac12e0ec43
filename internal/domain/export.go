package domain

// Artifact describes a finished export written to temporary storage.
// The consumer is responsible for offering it to the user and for the
// eventual cleanup of the temporary file (a background sweep also removes
// artifacts older than 24 hours, best-effort).
type Artifact struct {
	// Filename is the bare file name, e.g. "Fishing_Trips_Export_1735689600.csv".
	Filename string
	// Path is the absolute location of the written file.
	Path string
	// ContentType is the MIME type ("text/csv; charset=utf-8" or "application/pdf").
	ContentType string
	// Size is the artifact length in bytes.
	Size int64
}
