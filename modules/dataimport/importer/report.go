package importer

// Report aggregates per-row outcomes of one upload. Which counters are
// meaningful depends on the entity: members report errors, households
// silently skip invalid rows, donations report skips.
type Report struct {
	Format   Format
	Inserted int
	Updated  int
	Skipped  int
	Errors   int
	Total    int
}
