package stats

// AccessDecision is the outcome of an ownership check. Distinguishing
// NotFound from Forbidden gives correct 404 vs 403 semantics without leaking
// anything beyond the record's existence to unauthorized callers.
type AccessDecision int

const (
	DecisionAuthorized AccessDecision = iota
	DecisionNotFound
	DecisionForbidden
)

// OwnershipGuard verifies that a requesting coach transitively owns the
// team -> goalkeeper -> record chain. It is read-only and recomputes the join
// on every call; no caching.
type OwnershipGuard struct {
	repo StatsRepository
}

// NewOwnershipGuard creates a new OwnershipGuard.
func NewOwnershipGuard(repo StatsRepository) *OwnershipGuard {
	return &OwnershipGuard{repo: repo}
}

// CheckRecordAccess decides whether the coach may touch the record. On
// DecisionAuthorized the loaded record is returned so callers don't refetch.
func (g *OwnershipGuard) CheckRecordAccess(coachID, recordID uint) (AccessDecision, *StatisticsRecord, error) {
	rec, err := g.repo.GetOwnedRecord(coachID, recordID)
	if err != nil {
		return DecisionNotFound, nil, err
	}
	if rec != nil {
		return DecisionAuthorized, rec, nil
	}

	// The ownership join missed; a second lookup without the coach filter
	// tells 404 apart from 403.
	exists, err := g.repo.RecordExists(recordID)
	if err != nil {
		return DecisionNotFound, nil, err
	}
	if exists {
		return DecisionForbidden, nil, nil
	}
	return DecisionNotFound, nil, nil
}

// CheckGoalkeeperAccess is the forward check used before attaching a new
// record: the goalkeeper must resolve to a team owned by the coach.
func (g *OwnershipGuard) CheckGoalkeeperAccess(coachID, goalkeeperID uint) (AccessDecision, error) {
	owned, err := g.repo.GoalkeeperOwnedByCoach(coachID, goalkeeperID)
	if err != nil {
		return DecisionNotFound, err
	}
	if owned {
		return DecisionAuthorized, nil
	}

	exists, err := g.repo.GoalkeeperExists(goalkeeperID)
	if err != nil {
		return DecisionNotFound, err
	}
	if exists {
		return DecisionForbidden, nil
	}
	return DecisionNotFound, nil
}
