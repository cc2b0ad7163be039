// Package graph publishes normalized taxonomy entities to the
// knowledge graph over NATS.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/google/uuid"

	"github.com/c360studio/taxonorm/assemble"
	"github.com/c360studio/taxonorm/vocabulary/occupation"
)

// Subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// EntityIngestMessage is the message format for graph ingestion.
// Matches the format used by other semstreams components.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Publisher writes taxonomy entities to the graph ingest stream. A nil
// NATS client turns every publish into a no-op, so the pipeline runs
// file-only without branching.
type Publisher struct {
	nc      *natsclient.Client
	subject string
	source  string
}

// NewPublisher creates a publisher on the given subject; an empty
// subject falls back to GraphIngestSubject. Each publisher carries a
// unique run identifier in its triple source so graph consumers can
// tell ingestion runs apart.
func NewPublisher(nc *natsclient.Client, subject string) *Publisher {
	if subject == "" {
		subject = GraphIngestSubject
	}
	return &Publisher{
		nc:      nc,
		subject: subject,
		source:  "taxonorm.convert." + uuid.NewString(),
	}
}

// PublishOccupation publishes one occupation entity.
func (p *Publisher) PublishOccupation(ctx context.Context, occ assemble.Occupation) error {
	if p.nc == nil {
		return nil
	}

	entityID := OccupationEntityID(occ.ID)
	now := time.Now()

	triples := []message.Triple{
		p.triple(entityID, occupation.EntityTitle, occ.Name, now),
		p.triple(entityID, occupation.EntityShortName, occ.ShortName, now),
		p.triple(entityID, occupation.EntityCode, occ.Code, now),
		p.triple(entityID, occupation.PredicateEntityCategory, string(occ.Category), now),
	}
	if occ.Description != "" {
		triples = append(triples, p.triple(entityID, occupation.EntityDescription, occ.Description, now))
	}
	if occ.JobZone != "" {
		triples = append(triples, p.triple(entityID, occupation.EntityJobZone, occ.JobZone, now))
	}
	if occ.InclusionNote != "" {
		triples = append(triples, p.triple(entityID, occupation.EntityInclusionNote, occ.InclusionNote, now))
	}

	return p.publish(ctx, entityID, triples, now)
}

// PublishExpansion publishes one derived sibling occupation.
func (p *Publisher) PublishExpansion(ctx context.Context, exp assemble.Expansion) error {
	if p.nc == nil {
		return nil
	}

	entityID := ExpansionEntityID(exp.ID)
	now := time.Now()

	triples := []message.Triple{
		p.triple(entityID, occupation.ExpansionTitle, exp.Name, now),
		p.triple(entityID, occupation.ExpansionParent, OccupationEntityID(exp.ParentID), now),
		p.triple(entityID, occupation.ExpansionParentCode, exp.ParentCode, now),
		p.triple(entityID, occupation.PredicateExpansionType, string(exp.Type), now),
	}

	return p.publish(ctx, entityID, triples, now)
}

// PublishConcept publishes one concept entity.
func (p *Publisher) PublishConcept(ctx context.Context, c assemble.Concept) error {
	if p.nc == nil {
		return nil
	}

	entityID := ConceptEntityID(c.ID)
	now := time.Now()

	triples := []message.Triple{
		p.triple(entityID, occupation.ConceptLabel, c.Name, now),
	}

	return p.publish(ctx, entityID, triples, now)
}

// PublishRelationship publishes one occupation-to-concept edge. The
// edge lives on the occupation entity.
func (p *Publisher) PublishRelationship(ctx context.Context, rel assemble.ConceptRelationship) error {
	if p.nc == nil {
		return nil
	}

	entityID := OccupationEntityID(rel.FromID)
	now := time.Now()

	triples := []message.Triple{
		p.triple(entityID, occupation.ConceptRelated, ConceptEntityID(rel.ToID), now),
	}

	return p.publish(ctx, entityID, triples, now)
}

func (p *Publisher) triple(subject, predicate string, object any, now time.Time) message.Triple {
	return message.Triple{
		Subject:    subject,
		Predicate:  predicate,
		Object:     object,
		Source:     p.source,
		Timestamp:  now,
		Confidence: 1.0,
	}
}

func (p *Publisher) publish(ctx context.Context, entityID string, triples []message.Triple, now time.Time) error {
	msg := EntityIngestMessage{
		ID:        entityID,
		Triples:   triples,
		UpdatedAt: now,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal entity %s: %w", entityID, err)
	}

	if err := p.nc.PublishToStream(ctx, p.subject, data); err != nil {
		return fmt.Errorf("publish entity %s: %w", entityID, err)
	}

	return nil
}

// OccupationEntityID generates a consistent entity ID for an occupation.
// Format: taxonorm.local.occupation.<id>
func OccupationEntityID(id string) string {
	return fmt.Sprintf("taxonorm.local.occupation.%s", id)
}

// ExpansionEntityID generates a consistent entity ID for an expansion.
// Format: taxonorm.local.occupation.expansion.<id>
func ExpansionEntityID(id string) string {
	return fmt.Sprintf("taxonorm.local.occupation.expansion.%s", id)
}

// ConceptEntityID generates a consistent entity ID for a concept.
// Format: taxonorm.local.occupation.concept.<id>
func ConceptEntityID(id string) string {
	return fmt.Sprintf("taxonorm.local.occupation.concept.%s", id)
}
