package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// noArgs is the input schema of tools that take no arguments.
var noArgs = map[string]interface{}{
	"type":       "object",
	"properties": map[string]interface{}{},
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Session Lifecycle
		{
			Name:        "session_open",
			Description: "Open an editing session on an image. Replaces any open session. The edit cursor starts at the image center; nothing is edited until session_click.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image to edit",
					},
					"mask_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the overlay image used by image mode (optional)",
					},
					"strict": map[string]interface{}{
						"type":        "boolean",
						"description": "Reject out-of-range parameters instead of clamping them (default: server setting)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "session_close",
			Description: "Close the open session and drop its images from the cache. Unsaved edits are lost.",
			InputSchema: noArgs,
		},

		// Editing
		{
			Name:        "session_set_mode",
			Description: "Choose what is drawn into the edit region: mosaic (block pixelation), blur (5x5 box blur) or image (the session's overlay image). Redoes the pending edit if a point was clicked.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"mosaic", "blur", "image", "m", "b", "i"},
						"description": "Edit mode",
					},
				},
				"required": []string{"mode"},
			},
		},
		{
			Name:        "session_set_controls",
			Description: "Set the region and effect sliders. Omitted sliders keep their current value. Redoes the pending edit if a point was clicked.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Region height in pixels (0 to image height)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Region width in pixels (0 to image width)",
					},
					"corner_ul": map[string]interface{}{
						"type":        "integer",
						"description": "Upper-left corner rounding, 0 (square) to 100 (ellipse)",
					},
					"corner_ur": map[string]interface{}{
						"type":        "integer",
						"description": "Upper-right corner rounding, 0 (square) to 100 (ellipse)",
					},
					"corner_ll": map[string]interface{}{
						"type":        "integer",
						"description": "Lower-left corner rounding, 0 (square) to 100 (ellipse)",
					},
					"corner_lr": map[string]interface{}{
						"type":        "integer",
						"description": "Lower-right corner rounding, 0 (square) to 100 (ellipse)",
					},
					"horizon": map[string]interface{}{
						"type":        "integer",
						"description": "Mosaic cell height as a percentage of the region height (0-100)",
					},
					"vertical": map[string]interface{}{
						"type":        "integer",
						"description": "Mosaic cell width as a percentage of the region width (0-100)",
					},
					"opacity": map[string]interface{}{
						"type":        "integer",
						"description": "Edit opacity percentage (0-100)",
					},
					"sharp_color": map[string]interface{}{
						"type":        "integer",
						"description": "1 fills each mosaic cell with its center pixel, 0 with the cell average",
					},
					"feather": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels of the blended band along the region edge",
					},
				},
			},
		},
		{
			Name:        "session_click",
			Description: "Center the edit region on a point and redo the pending edit from the last applied image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate of the region center",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate of the region center",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "session_apply",
			Description: "Commit the pending edit. Later edits build on the result.",
			InputSchema: noArgs,
		},
		{
			Name:        "session_revert",
			Description: "Discard the pending edit and restore the last applied image.",
			InputSchema: noArgs,
		},

		// Inspection
		{
			Name:        "session_preview",
			Description: "Return the current preview as base64-encoded PNG, optionally scaled, cropped to the edit region or marked with a guide outline.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Scale factor (default: 1.0)",
						"default":     1.0,
					},
					"guide": map[string]interface{}{
						"type":        "boolean",
						"description": "Outline the edit region, its center and seam (default: false)",
						"default":     false,
					},
					"guide_color": map[string]interface{}{
						"type":        "string",
						"description": "Guide color as hex (default: #FF0000)",
						"default":     "#FF0000",
					},
					"crop_to_region": map[string]interface{}{
						"type":        "boolean",
						"description": "Return only the edit region (default: false)",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "session_sample_color",
			Description: "Get the color of the preview at a pixel, as hex, RGB, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "session_diff",
			Description: "Compare the preview with the last applied image: changed pixel count, bounding box and color deltas.",
			InputSchema: noArgs,
		},
		{
			Name:        "session_save",
			Description: "Write the preview to a file. The format follows the extension: .png, .jpg/.jpeg, .bmp or .qoi.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute output path",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 1-100 (default: server setting, 95)",
						"default":     95,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
