package remap

// Stage is a step of a run.
type Stage int

const (
	// StageLoaded means the input graph is available.
	StageLoaded Stage = iota
	// StageConceptsDiscovered means the concept subjects are known.
	StageConceptsDiscovered
	// StageIdentitiesMinted means every concept has a registry IRI.
	StageIdentitiesMinted
	// StageRewritten means the rewritten graph has been built.
	StageRewritten
	// StagePersisted means every concept entity has been updated.
	StagePersisted
	// StageAborted means the run failed.
	StageAborted
)

var stageNames = map[Stage]string{
	StageLoaded:             "loaded",
	StageConceptsDiscovered: "concepts_discovered",
	StageIdentitiesMinted:   "identities_minted",
	StageRewritten:          "rewritten",
	StagePersisted:          "persisted",
	StageAborted:            "aborted",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
