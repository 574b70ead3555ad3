package web

import (
	"encoding/json"
	"net/http"

	"github.com/proxpl/proxsite/internal/llm"
	"github.com/proxpl/proxsite/internal/playground"
	"github.com/proxpl/proxsite/internal/session"
)

// maxCodeBytes bounds request bodies and editor content.
const maxCodeBytes = 64 << 10

type playgroundPage struct {
	Layout
	Presets      []playground.Preset
	Code         string
	Output       string
	Status       playground.Status
	GenerateOn   bool
	CompileDelay int64 // milliseconds
}

func (s *Server) handlePlayground(w http.ResponseWriter, r *http.Request) {
	rec := s.loadSession(r)
	if key := r.URL.Query().Get("preset"); key != "" {
		if p, ok := playground.LookupPreset(key); ok {
			rec.Code = p.Code
			rec.Status = playground.StatusReady
			s.saveSession(w, r, rec)
			http.Redirect(w, r, "/playground", http.StatusSeeOther)
			return
		}
	}
	s.saveSession(w, r, rec)
	s.render(w, r, "playground", playgroundPage{
		Layout:       s.layout("Interactive Playground", "playground"),
		Presets:      playground.Presets(),
		Code:         rec.Code,
		Output:       rec.Output,
		Status:       rec.Status,
		GenerateOn:   s.opts.Generator != nil,
		CompileDelay: s.opts.Compiler.Delay.Milliseconds(),
	})
}

func formCode(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCodeBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "request too large or malformed", http.StatusBadRequest)
		return "", false
	}
	return r.PostForm.Get("code"), true
}

// handleRun simulates compiling the submitted code and stores the result.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	rec := s.loadSession(r)
	code, ok := formCode(w, r)
	if !ok {
		return
	}
	rec.Code = code
	res, err := s.opts.Compiler.Run(r.Context(), code)
	if err != nil {
		// Client went away mid-compile.
		return
	}
	rec.Output = res.Output
	rec.Status = res.Status
	s.saveSession(w, r, rec)
	http.Redirect(w, r, "/playground", http.StatusSeeOther)
}

// handleGenerate asks the collaborator for code (mode=code, input from the
// prompt field) or an explanation of the editor contents (mode=explain).
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	rec := s.loadSession(r)
	code, ok := formCode(w, r)
	if !ok {
		return
	}
	if r.PostForm.Has("code") {
		rec.Code = code
	}
	mode := playground.Mode(r.PostForm.Get("mode"))
	if mode == "" {
		mode = playground.ModeCode
	}
	input := r.PostForm.Get("prompt")
	if mode == playground.ModeExplain {
		input = rec.Code
	}

	out, err := playground.Generate(r.Context(), s.opts.Generator, mode, input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	applyGenerated(&rec, mode, out)
	s.saveSession(w, r, rec)
	http.Redirect(w, r, "/playground", http.StatusSeeOther)
}

// applyGenerated puts generated code into the editor and everything else
// (explanations, failures) into the output pane.
func applyGenerated(rec *session.Record, mode playground.Mode, out string) {
	switch {
	case out == "":
	case llm.Failed(out):
		rec.Output = out
		rec.Status = playground.StatusError
	case mode == playground.ModeCode:
		rec.Code = out
		rec.Status = playground.StatusReady
	default:
		rec.Output = out
		rec.Status = playground.StatusReady
	}
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	rec := s.loadSession(r)
	rec.Output = playground.Placeholder
	rec.Status = playground.StatusReady
	s.saveSession(w, r, rec)
	http.Redirect(w, r, "/playground", http.StatusSeeOther)
}

type runRequest struct {
	Code string `json:"code"`
}

type generateRequest struct {
	Mode  playground.Mode `json:"mode"`
	Input string          `json:"input"`
}

type generateResponse struct {
	Mode   playground.Mode `json:"mode"`
	Output string          `json:"output"`
	Failed bool            `json:"failed"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxCodeBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

func (s *Server) apiPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, playground.Presets())
}

func (s *Server) apiRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := s.opts.Compiler.Run(r.Context(), req.Code)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) apiGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Mode == "" {
		req.Mode = playground.ModeCode
	}
	out, err := playground.Generate(r.Context(), s.opts.Generator, req.Mode, req.Input)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Mode: req.Mode, Output: out, Failed: llm.Failed(out)})
}
