package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/mosaic-tools-mcp/internal/imaging"
	"github.com/ironsheep/mosaic-tools-mcp/internal/mosaic"
	"github.com/ironsheep/mosaic-tools-mcp/internal/session"
)

// errNoSession is returned by session tools called before session_open.
var errNoSession = errors.New("no open session")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "session_open", "session_click").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// argsError marks tool arguments that could not be decoded.
type argsError struct {
	err error
}

func (e *argsError) Error() string {
	return fmt.Sprintf("invalid arguments: %v", e.err)
}

func (e *argsError) Unwrap() error {
	return e.err
}

// decodeArgs unmarshals tool arguments into v. Missing arguments leave v at
// its zero value.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return &argsError{err: err}
	}
	return nil
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Undecodable arguments return a JSON-RPC error with code -32602; every
// other tool failure uses -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var ae *argsError
		if errors.As(err, &ae) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Fetches the open session as needed
//  4. Calls the appropriate session/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Session Lifecycle
	case "session_open":
		return s.handleSessionOpen(args)
	case "session_close":
		return s.handleSessionClose(args)

	// Editing
	case "session_set_mode":
		return s.handleSessionSetMode(args)
	case "session_set_controls":
		return s.handleSessionSetControls(args)
	case "session_click":
		return s.handleSessionClick(args)
	case "session_apply":
		return s.handleSessionApply(args)
	case "session_revert":
		return s.handleSessionRevert(args)

	// Inspection
	case "session_preview":
		return s.handleSessionPreview(args)
	case "session_sample_color":
		return s.handleSessionSampleColor(args)
	case "session_diff":
		return s.handleSessionDiff(args)
	case "session_save":
		return s.handleSessionSave(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// current returns the open session.
func (s *Server) current() (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, errNoSession
	}
	return s.session, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Session Lifecycle Handlers ===

type sessionOpenArgs struct {
	Path     string `json:"path"`
	MaskPath string `json:"mask_path"`
	Strict   *bool  `json:"strict"`
}

// sessionState describes an open session.
type sessionState struct {
	Path     string          `json:"path"`
	MaskPath string          `json:"mask_path,omitempty"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Strict   bool            `json:"strict"`
	Params   mosaic.Params   `json:"params"`
	Controls mosaic.Controls `json:"controls"`
}

func (s *Server) handleSessionOpen(args json.RawMessage) (interface{}, error) {
	var a sessionOpenArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, &argsError{err: errors.New("path is required")}
	}

	strict := s.cfg.Strict
	if a.Strict != nil {
		strict = *a.Strict
	}

	source, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	var mask image.Image
	if a.MaskPath != "" {
		if mask, err = s.cache.Load(a.MaskPath); err != nil {
			return nil, err
		}
	}

	sess, err := session.New(source, mask, session.Options{
		Strict: strict,
		Debug:  s.cfg.Debug,
		Logger: s.cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.evictLocked()
	s.session = sess
	s.sessionPath = a.Path
	s.maskPath = a.MaskPath
	s.mu.Unlock()

	size := sess.Size()
	return &sessionState{
		Path:     a.Path,
		MaskPath: a.MaskPath,
		Width:    size.X,
		Height:   size.Y,
		Strict:   strict,
		Params:   sess.Params(),
		Controls: sess.Controls(),
	}, nil
}

func (s *Server) handleSessionClose(args json.RawMessage) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, errNoSession
	}
	path := s.sessionPath
	s.evictLocked()
	s.session = nil
	s.sessionPath, s.maskPath = "", ""
	return map[string]interface{}{"closed": path}, nil
}

// evictLocked drops the open session's files from the cache. s.mu must be
// held.
func (s *Server) evictLocked() {
	if s.sessionPath != "" {
		s.cache.Evict(s.sessionPath)
	}
	if s.maskPath != "" {
		s.cache.Evict(s.maskPath)
	}
}

// === Editing Handlers ===

// editState reports the session after an edit request. Region is nil when
// nothing was edited, either because no point has been clicked yet or
// because the region is empty.
type editState struct {
	Edited bool            `json:"edited"`
	Region *imaging.Bounds `json:"region,omitempty"`
	Params mosaic.Params   `json:"params"`
}

func newEditState(sess *session.Session, result *mosaic.Result) *editState {
	state := &editState{Params: sess.Params()}
	if result != nil {
		state.Edited = true
		if !result.Region.Empty() {
			b := imaging.BoundsOf(result.Region)
			state.Region = &b
		}
	}
	return state
}

type sessionSetModeArgs struct {
	Mode string `json:"mode"`
}

func (s *Server) handleSessionSetMode(args json.RawMessage) (interface{}, error) {
	var a sessionSetModeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	mode, err := mosaic.ParseMode(a.Mode)
	if err != nil {
		return nil, &argsError{err: err}
	}
	sess, err := s.current()
	if err != nil {
		return nil, err
	}

	result, err := sess.SetMode(mode)
	if err != nil {
		return nil, err
	}
	return newEditState(sess, result), nil
}

func (s *Server) handleSessionSetControls(args json.RawMessage) (interface{}, error) {
	sess, err := s.current()
	if err != nil {
		return nil, err
	}

	// Omitted sliders keep their current position.
	c := sess.Controls()
	if err := decodeArgs(args, &c); err != nil {
		return nil, err
	}

	result, err := sess.SetControls(c)
	if err != nil {
		return nil, err
	}
	return newEditState(sess, result), nil
}

type pointArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleSessionClick(args json.RawMessage) (interface{}, error) {
	var a pointArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.current()
	if err != nil {
		return nil, err
	}

	result, err := sess.Click(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return newEditState(sess, result), nil
}

func (s *Server) handleSessionApply(args json.RawMessage) (interface{}, error) {
	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	sess.Apply()
	return map[string]interface{}{"applied": true}, nil
}

func (s *Server) handleSessionRevert(args json.RawMessage) (interface{}, error) {
	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	sess.Revert()
	return map[string]interface{}{"reverted": true}, nil
}

// === Inspection Handlers ===

type sessionPreviewArgs struct {
	Scale        float64 `json:"scale"`
	Guide        bool    `json:"guide"`
	GuideColor   string  `json:"guide_color"`
	CropToRegion bool    `json:"crop_to_region"`
}

func (s *Server) handleSessionPreview(args json.RawMessage) (interface{}, error) {
	var a sessionPreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	sess, err := s.current()
	if err != nil {
		return nil, err
	}

	var img image.Image = sess.Current()
	last := sess.LastResult()

	if a.Guide && last != nil {
		p := sess.Params()
		g := imaging.Guide{
			Region: last.Region,
			Center: image.Pt(p.CenterX, p.CenterY),
			Label:  true,
		}
		for _, c := range last.Contours {
			g.Points = append(g.Points, c...)
		}
		if img, err = imaging.GuideOverlay(img, g, a.GuideColor); err != nil {
			return nil, err
		}
	}

	if a.CropToRegion {
		if last == nil || last.Region.Empty() {
			return nil, errors.New("no edit region to crop to; click a point first")
		}
		return imaging.PreviewRegion(img, last.Region, a.Scale)
	}
	return imaging.Preview(img, a.Scale)
}

func (s *Server) handleSessionSampleColor(args json.RawMessage) (interface{}, error) {
	var a pointArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(sess.Current(), a.X, a.Y)
}

func (s *Server) handleSessionDiff(args json.RawMessage) (interface{}, error) {
	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	return imaging.Diff(sess.Baseline(), sess.Current())
}

type sessionSaveArgs struct {
	Path    string `json:"path"`
	Quality int    `json:"quality"`
}

func (s *Server) handleSessionSave(args json.RawMessage) (interface{}, error) {
	var a sessionSaveArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, &argsError{err: errors.New("path is required")}
	}
	if a.Quality == 0 {
		a.Quality = s.cfg.JPEGQuality
	}
	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	return sess.Save(a.Path, imaging.SaveOptions{JPEGQuality: a.Quality})
}
