package main

import (
	"log/slog"
	"net/http"

	"github.com/dealercoach/dealercoach/internal/ai"
	"github.com/dealercoach/dealercoach/internal/checklist"
	"github.com/dealercoach/dealercoach/internal/contexthelpers"
	"github.com/dealercoach/dealercoach/internal/errors"
	"github.com/dealercoach/dealercoach/internal/evaluation"
	"github.com/dealercoach/dealercoach/internal/models"
	"github.com/dealercoach/dealercoach/internal/personas"
)

// Request limits for the AI proxy endpoints. The limits protect the upstream
// spend, not the server.
const (
	maxChatMessages         = 50
	maxTrainingChatMessages = 100
	maxMessageChars         = 2000
	maxSystemPromptChars    = 5000
	maxSpeakChars           = 5000
	maxTranscribeBytes      = 10 << 20
)

// validateMessages checks a conversation payload against the given limits and
// returns an error message suitable for a 400 response, or "" when valid.
func validateMessages(messages []checklist.Turn, maxCount int) string {
	if len(messages) == 0 {
		return "At least one message is required"
	}
	if len(messages) > maxCount {
		return "Too many messages"
	}
	for _, message := range messages {
		if message.Role != checklist.RoleUser && message.Role != checklist.RoleAssistant {
			return "Message role must be user or assistant"
		}
		if message.Content == "" {
			return "Message content must not be empty"
		}
		if len(message.Content) > maxMessageChars {
			return "Message content too long"
		}
	}
	return ""
}

func toAIMessages(turns []checklist.Turn) []ai.Message {
	messages := make([]ai.Message, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, ai.Message{Role: string(turn.Role), Content: turn.Content})
	}
	return messages
}

// chat proxies a role-play conversation to the model using the requested
// persona's system prompt. Unknown personas fall back to the default so a
// stale client keeps working.
func (app *application) chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []checklist.Turn `json:"messages"`
		Persona  string           `json:"persona"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if msg := validateMessages(req.Messages, maxChatMessages); msg != "" {
		app.clientError(w, r, http.StatusBadRequest, msg)
		return
	}

	persona := personas.Get(req.Persona)
	reply, err := app.anthropic.Complete(r.Context(), persona.SystemPrompt, toAIMessages(req.Messages), ai.MaxTokens)
	if err != nil {
		app.upstreamError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, struct {
		Message string `json:"message"`
		Persona string `json:"persona"`
		Voice   string `json:"voice"`
	}{Message: reply, Persona: persona.ID, Voice: persona.Voice})
}

type scenario struct {
	SystemPrompt string `json:"systemPrompt"`
	Description  string `json:"description"`
	ChecklistID  string `json:"checklistId"`
	PersonaID    string `json:"personaId"`
}

// trainingChat proxies a conversation with a caller-supplied scenario prompt.
// Unlike chat, the client controls the customer's behaviour entirely.
func (app *application) trainingChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []checklist.Turn `json:"messages"`
		Scenario scenario         `json:"scenario"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if msg := validateMessages(req.Messages, maxTrainingChatMessages); msg != "" {
		app.clientError(w, r, http.StatusBadRequest, msg)
		return
	}
	if req.Scenario.SystemPrompt == "" {
		app.clientError(w, r, http.StatusBadRequest, "Scenario system prompt is required")
		return
	}
	if len(req.Scenario.SystemPrompt) > maxSystemPromptChars {
		app.clientError(w, r, http.StatusBadRequest, "Scenario system prompt too long")
		return
	}

	reply, err := app.anthropic.Complete(
		r.Context(), req.Scenario.SystemPrompt, toAIMessages(req.Messages), ai.MaxTokens)
	if err != nil {
		app.upstreamError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, struct {
		Content string `json:"content"`
	}{Content: reply})
}

// evaluateSession grades a finished session. A failed or unparsable model
// response degrades to the deterministic fallback score; the trainee always
// gets an evaluation, never a 5xx.
func (app *application) evaluateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages        []checklist.Turn `json:"messages"`
		Scenario        scenario         `json:"scenario"`
		ChecklistState  checklist.State  `json:"checklistState"`
		DurationSeconds int              `json:"durationSeconds"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if msg := validateMessages(req.Messages, maxTrainingChatMessages); msg != "" {
		app.clientError(w, r, http.StatusBadRequest, msg)
		return
	}

	checklistID := req.Scenario.ChecklistID
	dictionary, ok := checklist.Lookup(checklistID)
	if !ok {
		checklistID = checklist.DictionaryCNA
		dictionary, _ = checklist.Lookup(checklistID)
	}
	progress := checklist.Progress(req.ChecklistState, dictionary.Items)

	result, parsed := evaluation.Result{}, false
	system, messages := evaluation.BuildPrompt(
		req.Scenario.Description, req.Messages, progress, req.DurationSeconds)
	raw, err := app.anthropic.Complete(r.Context(), system, messages, ai.MaxTokens)
	if err == nil {
		result, parsed = evaluation.Parse(raw)
	} else {
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "evaluation model call failed",
			errors.SlogError(err))
	}
	if !parsed {
		result = evaluation.Fallback(progress, req.DurationSeconds)
	}

	session := models.TrainingSession{
		UserID:          contexthelpers.AuthenticatedUserID(r.Context()),
		ChecklistID:     checklistID,
		PersonaID:       req.Scenario.PersonaID,
		OverallScore:    result.OverallScore,
		DurationSeconds: req.DurationSeconds,
		Transcript:      req.Messages,
		Evaluation:      result,
	}
	if _, err := app.sessions.Create(r.Context(), session); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, result)
}

// speak converts text to speech and streams back the audio.
func (app *application) speak(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text  string `json:"text"`
		Voice string `json:"voice"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		app.clientError(w, r, http.StatusBadRequest, "Text is required")
		return
	}
	if len(req.Text) > maxSpeakChars {
		app.clientError(w, r, http.StatusBadRequest, "Text too long")
		return
	}
	voice := req.Voice
	if voice == "" {
		voice = personas.Get(personas.DefaultID).Voice
	}

	audio, err := app.tts.Speak(r.Context(), req.Text, voice)
	if err != nil {
		app.upstreamError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	if _, err := w.Write(audio); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "write audio", errors.SlogError(err))
	}
}

// transcribe converts an uploaded audio clip to text.
func (app *application) transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTranscribeBytes)
	file, header, err := r.FormFile("audio")
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "Audio file is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	text, err := app.transcriber.Transcribe(r.Context(), file, header.Filename)
	if err != nil {
		app.upstreamError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, struct {
		Text string `json:"text"`
	}{Text: text})
}
