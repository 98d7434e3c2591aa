package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/extract"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/repo"
)

// ChatUsecase runs the message processing pipeline: route the intent, run
// the extractors, persist every draft plus the extracted flag in a single
// transaction, and compose the system reply.
type ChatUsecase struct {
	gw         repo.Gateway
	router     *IntentRouter
	recommend  *RecommendUsecase
	composer   *Composer
	extractors []extract.Extractor
	now        func() time.Time
}

// NewChatUsecase creates a new chat usecase. The clock anchors sleep
// extraction and recorded-at timestamps; nil means time.Now.
func NewChatUsecase(gw repo.Gateway, router *IntentRouter, recommend *RecommendUsecase, composer *Composer, now func() time.Time) *ChatUsecase {
	if now == nil {
		now = time.Now
	}
	return &ChatUsecase{
		gw:         gw,
		router:     router,
		recommend:  recommend,
		composer:   composer,
		extractors: extract.All(now),
		now:        now,
	}
}

// ProcessResult is the outcome of processing one message
type ProcessResult struct {
	Message *domain.Message // the originating message, flag updated if claimed
	Reply   *domain.Message // persisted system reply, nil for no-op messages
	Drafts  *extract.Drafts // what was extracted, nil on the recommendation path
}

// ProcessMessage processes one message start-to-finish, synchronously.
// Already-processed and system-authored messages are returned unchanged
// with no reply. A failed recommendation run surfaces as a user-visible
// failure reply, not an error.
func (uc *ChatUsecase) ProcessMessage(ctx context.Context, messageID string) (*ProcessResult, error) {
	msg, err := uc.gw.GetMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	if !msg.IsProcessable() {
		return &ProcessResult{Message: msg}, nil
	}

	if uc.router.IsRecommendationRequest(msg.Text) {
		return uc.processRecommendationRequest(ctx, msg)
	}

	drafts := extract.Run(uc.extractors, msg.Text)
	if drafts.Empty() {
		reply, err := uc.reply(ctx, msg.UserID, uc.composer.Help())
		if err != nil {
			return nil, err
		}
		return &ProcessResult{Message: msg, Reply: reply, Drafts: drafts}, nil
	}

	if err := uc.persistDrafts(ctx, msg, drafts); err != nil {
		if errors.Is(err, repo.ErrAlreadyProcessed) {
			// lost the claim race: another writer persisted this message,
			// nothing was written here
			msg.Extracted = true
			return &ProcessResult{Message: msg}, nil
		}
		reply, replyErr := uc.reply(ctx, msg.UserID, uc.composer.ProcessFailure())
		if replyErr != nil {
			return nil, fmt.Errorf("persist drafts: %w (failure reply: %v)", err, replyErr)
		}
		return &ProcessResult{Message: msg, Reply: reply}, fmt.Errorf("persist drafts: %w", err)
	}
	msg.Extracted = true

	reply, err := uc.reply(ctx, msg.UserID, uc.composer.Acknowledgement(drafts))
	if err != nil {
		return nil, err
	}
	return &ProcessResult{Message: msg, Reply: reply, Drafts: drafts}, nil
}

// persistDrafts writes every draft and claims the extracted flag inside one
// transaction, so a mid-pipeline failure or a lost claim race leaves no
// partial state.
func (uc *ChatUsecase) persistDrafts(ctx context.Context, msg *domain.Message, drafts *extract.Drafts) error {
	recordedAt := uc.now()
	return uc.gw.Atomic(ctx, func(tx repo.Gateway) error {
		for _, d := range drafts.Activities {
			if _, err := tx.CreateActivity(ctx, msg.UserID, d, recordedAt); err != nil {
				return fmt.Errorf("create activity: %w", err)
			}
		}
		for _, d := range drafts.Nutrition {
			if _, err := tx.CreateNutrition(ctx, msg.UserID, d, recordedAt); err != nil {
				return fmt.Errorf("create nutrition: %w", err)
			}
		}
		for _, d := range drafts.Hydration {
			if _, err := tx.CreateHydration(ctx, msg.UserID, d, recordedAt); err != nil {
				return fmt.Errorf("create hydration: %w", err)
			}
		}
		for _, d := range drafts.Sleep {
			if _, err := tx.CreateSleep(ctx, msg.UserID, d, recordedAt); err != nil {
				return fmt.Errorf("create sleep: %w", err)
			}
		}
		for _, d := range drafts.Wellbeing {
			if _, err := tx.CreateWellbeing(ctx, msg.UserID, d, recordedAt); err != nil {
				return fmt.Errorf("create wellbeing: %w", err)
			}
		}
		claimed, err := tx.ClaimExtracted(ctx, msg.ID)
		if err != nil {
			return fmt.Errorf("claim message: %w", err)
		}
		if !claimed {
			return repo.ErrAlreadyProcessed
		}
		return nil
	})
}

func (uc *ChatUsecase) processRecommendationRequest(ctx context.Context, msg *domain.Message) (*ProcessResult, error) {
	recs, err := uc.recommend.Generate(ctx, msg.UserID)
	if err != nil {
		reply, replyErr := uc.reply(ctx, msg.UserID, uc.composer.RecommendFailure())
		if replyErr != nil {
			return nil, fmt.Errorf("generate recommendations: %w (failure reply: %v)", err, replyErr)
		}
		return &ProcessResult{Message: msg, Reply: reply}, nil
	}

	reply, err := uc.reply(ctx, msg.UserID, uc.composer.RecommendationDigest(recs))
	if err != nil {
		return nil, err
	}
	return &ProcessResult{Message: msg, Reply: reply}, nil
}

func (uc *ChatUsecase) reply(ctx context.Context, userID, text string) (*domain.Message, error) {
	reply, err := uc.gw.CreateMessage(ctx, userID, text, domain.DirectionSystem)
	if err != nil {
		return nil, fmt.Errorf("create system reply: %w", err)
	}
	return reply, nil
}
