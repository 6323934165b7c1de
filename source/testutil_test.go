package source_test

// seedDet is the fixed seed shared by tests needing a reproducible partition.
const seedDet int64 = 42
