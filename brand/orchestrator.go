package brand

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brandforge/brandforge/domain"
	"github.com/brandforge/brandforge/policy"
	"github.com/brandforge/brandforge/state"
	"github.com/brandforge/brandforge/store"
)

// imageSlots is the fixed fan-out: slot 0 is the logo, slots 1..3 are
// the social posts in issue order.
const imageSlots = 1 + domain.SocialPostCount

// ErrBlocked is returned when the generation policy rejects a request
// before any outbound call is made.
var ErrBlocked = errors.New("generation request blocked by policy")

// Generator runs the full pipeline: validate, strategy, image fan-out,
// merge, publish.
type Generator struct {
	strategy   *StrategyRequester
	images     ImageClient
	imageModel string
	store      store.Store
	state      *state.Store
	policy     *policy.Engine
}

// NewGenerator creates a pipeline generator. The policy engine may be
// nil, in which case no gating is applied.
func NewGenerator(strategy *StrategyRequester, images ImageClient, imageModel string, st store.Store, clientState *state.Store, policyEngine *policy.Engine) *Generator {
	return &Generator{
		strategy:   strategy,
		images:     images,
		imageModel: imageModel,
		store:      st,
		state:      clientState,
		policy:     policyEngine,
	}
}

// Generate executes one generation run. The strategy call strictly
// precedes the image calls; image failures are absorbed per slot and
// never fail the run. On strategy failure no identity is published.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.BrandIdentity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if g.policy != nil {
		decision, reason, err := g.policy.Evaluate(ctx, map[string]interface{}{
			"brand_name":  req.BrandName,
			"description": req.Description,
			"vibe":        req.Vibe,
		})
		if err != nil {
			log.Printf("WARN: policy evaluation failed, allowing request: %v", err)
		} else if decision == "block" {
			if reason != "" {
				return nil, fmt.Errorf("%w: %s", ErrBlocked, reason)
			}
			return nil, ErrBlocked
		}
	}

	runID := "run_" + uuid.New().String()[:8]
	run := &domain.Run{
		RunID:     runID,
		BrandName: req.BrandName,
		Status:    domain.RunStatusCreated,
		StartedAt: time.Now(),
	}
	if err := g.store.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	steps := domain.NewStepTracker()
	g.state.Dispatch(state.SetLoading{Loading: true})
	g.state.Dispatch(state.SetSteps{Steps: steps.Snapshot()})

	g.recordEvent(ctx, runID, domain.EventTypeRunStarted, domain.RunStartedPayload{
		BrandName: req.BrandName,
		Vibe:      req.Vibe,
	})
	if err := g.store.UpdateRunStatus(ctx, runID, domain.RunStatusRunning); err != nil {
		log.Printf("WARN: failed to update run status: %v", err)
	}

	// Strategy strictly precedes all image calls: the image prompts are
	// part of its output.
	g.recordEvent(ctx, runID, domain.EventTypeStrategyStarted, nil)
	strategyStart := time.Now()
	strategy, err := g.strategy.Generate(ctx, req)
	if err != nil {
		g.recordEvent(ctx, runID, domain.EventTypeStrategyDone, domain.StrategyDonePayload{
			LatencyMs: time.Since(strategyStart).Milliseconds(),
			Error:     err.Error(),
		})
		g.failRun(ctx, runID, err)
		g.state.Dispatch(state.SetError{Message: "Failed to generate brand identity"})
		return nil, fmt.Errorf("strategy generation failed: %w", err)
	}
	g.recordEvent(ctx, runID, domain.EventTypeStrategyDone, domain.StrategyDonePayload{
		Tagline:   strategy.Tagline,
		LatencyMs: time.Since(strategyStart).Milliseconds(),
	})

	// Text fields are observable before any image resolves.
	identity := domain.NewIdentity(req, strategy)
	g.state.Dispatch(state.SetIdentity{Identity: identity})
	for _, id := range []string{domain.StepStrategy, domain.StepTagline, domain.StepColors, domain.StepTypography} {
		g.setStep(ctx, runID, steps, id, domain.StepCompleted)
	}
	g.setStep(ctx, runID, steps, domain.StepLogo, domain.StepLoading)
	g.setStep(ctx, runID, steps, domain.StepSocial, domain.StepLoading)

	urls, errs, latencies := g.fanOutImages(ctx, runID, strategy)

	// Merge by originating slot, never by completion order.
	for slot := 0; slot < imageSlots; slot++ {
		g.recordEvent(ctx, runID, domain.EventTypeImageDone, domain.ImageDonePayload{
			Slot:      slotName(slot),
			ImageURL:  urls[slot],
			LatencyMs: latencies[slot].Milliseconds(),
			Error:     errString(errs[slot]),
		})
		if errs[slot] != nil {
			log.Printf("WARN: image generation failed for %s: %v", slotName(slot), errs[slot])
			continue
		}
		if urls[slot] == "" {
			continue
		}
		if slot == 0 {
			identity.LogoURL = urls[slot]
			g.state.Dispatch(state.UpdateLogo{URL: urls[slot]})
		} else {
			identity.SocialPosts[slot-1].ImageURL = urls[slot]
			g.state.Dispatch(state.UpdateSocialImage{Index: slot - 1, URL: urls[slot]})
		}
	}

	// Image steps complete regardless of per-slot outcome: the run
	// itself has not failed, a failed slot just stays empty.
	g.setStep(ctx, runID, steps, domain.StepLogo, domain.StepCompleted)
	g.setStep(ctx, runID, steps, domain.StepSocial, domain.StepCompleted)

	if err := g.store.SaveBrand(ctx, store.BrandCacheKey, identity); err != nil {
		log.Printf("WARN: failed to cache identity: %v", err)
	}
	if err := g.store.UpdateRunCompleted(ctx, runID, domain.RunStatusDone, ""); err != nil {
		log.Printf("WARN: failed to complete run: %v", err)
	}
	g.recordEvent(ctx, runID, domain.EventTypeRunDone, nil)
	g.state.Dispatch(state.SetLoading{Loading: false})

	return identity, nil
}

// fanOutImages issues the four image calls back-to-back and jointly
// awaits them. Results are slot-indexed; each goroutine writes only its
// own slot.
func (g *Generator) fanOutImages(ctx context.Context, runID string, strategy *domain.BrandStrategy) ([]string, []error, []time.Duration) {
	prompts := [imageSlots]string{
		strategy.LogoPrompt,
		strategy.SocialImagePrompt,
		strategy.SocialImagePrompt,
		strategy.SocialImagePrompt,
	}

	urls := make([]string, imageSlots)
	errs := make([]error, imageSlots)
	latencies := make([]time.Duration, imageSlots)

	var wg sync.WaitGroup
	for i, prompt := range prompts {
		g.recordEvent(ctx, runID, domain.EventTypeImageStarted, domain.ImageDonePayload{Slot: slotName(i)})
		wg.Add(1)
		go func(slot int, prompt string) {
			defer wg.Done()
			started := time.Now()
			url, err := g.images.GenerateImage(ctx, g.imageModel, prompt)
			urls[slot] = url
			errs[slot] = err
			latencies[slot] = time.Since(started)
		}(i, prompt)
	}
	wg.Wait()

	return urls, errs, latencies
}

// failRun marks the run failed and records the failure event.
func (g *Generator) failRun(ctx context.Context, runID string, cause error) {
	if err := g.store.UpdateRunCompleted(ctx, runID, domain.RunStatusFailed, cause.Error()); err != nil {
		log.Printf("WARN: failed to mark run failed: %v", err)
	}
	g.recordEvent(ctx, runID, domain.EventTypeRunFailed, domain.RunFailedPayload{Error: cause.Error()})
}

// setStep updates one step, mirrors it into the client state, and
// records the transition.
func (g *Generator) setStep(ctx context.Context, runID string, steps *domain.StepTracker, stepID string, status domain.StepStatus) {
	steps.Set(stepID, status)
	g.state.Dispatch(state.SetSteps{Steps: steps.Snapshot()})
	g.recordEvent(ctx, runID, domain.EventTypeStepStatus, domain.StepStatusPayload{StepID: stepID, Status: status})
}

// recordEvent records a trace event. Event storage failure never
// interrupts the pipeline.
func (g *Generator) recordEvent(ctx context.Context, runID string, eventType domain.EventType, payload interface{}) {
	var data json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			log.Printf("WARN: failed to marshal %s payload: %v", eventType, err)
			return
		}
		data = b
	}

	event := &domain.Event{
		EventID: "evt_" + uuid.New().String()[:8],
		RunID:   runID,
		Ts:      time.Now().UnixMilli(),
		Type:    eventType,
		Payload: data,
	}
	if err := g.store.CreateEvent(ctx, event); err != nil {
		log.Printf("WARN: failed to record %s event: %v", eventType, err)
	}
}

func slotName(slot int) string {
	if slot == 0 {
		return "logo"
	}
	return fmt.Sprintf("social_%d", slot)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
