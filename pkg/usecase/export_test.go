package usecase

// Export unexported functions for testing
var (
	EncodeSnapshotForTest = encodeSnapshot
	SleepForTest          = sleep
)
