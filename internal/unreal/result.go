package unreal

// The Unreal plugin reports logical failures in two envelope shapes:
//
//	{"status": "error", "error"|"message": "..."}
//	{"success": false, "error"|"message": "..."}
//
// Both are folded into the first shape before a response is handed to tool
// handlers, so the rest of the server only ever sees one error layout.

// Normalize rewrites a peer response into the canonical result shape.
// Non-error responses pass through untouched.
func Normalize(resp map[string]any) map[string]any {
	if resp == nil {
		return nil
	}

	if status, ok := resp["status"].(string); ok && status == "error" {
		// Already the canonical shape; just guarantee the error field exists
		if _, ok := resp["error"]; !ok {
			resp["error"] = errorMessage(resp)
		}
		return resp
	}

	if success, ok := resp["success"].(bool); ok && !success {
		return map[string]any{
			"status": "error",
			"error":  errorMessage(resp),
		}
	}

	return resp
}

// errorMessage extracts the failure message, preferring an explicit error
// field over a message field.
func errorMessage(resp map[string]any) string {
	if s, ok := resp["error"].(string); ok && s != "" {
		return s
	}
	if s, ok := resp["message"].(string); ok && s != "" {
		return s
	}
	return "unknown Unreal error"
}

// ErrorResult builds a canonical failure result from a message
func ErrorResult(msg string) map[string]any {
	return map[string]any{
		"status": "error",
		"error":  msg,
	}
}

// IsError reports whether a normalized result carries a failure
func IsError(resp map[string]any) bool {
	status, ok := resp["status"].(string)
	return ok && status == "error"
}

// ErrorText returns the failure message of a normalized error result
func ErrorText(resp map[string]any) string {
	if s, ok := resp["error"].(string); ok {
		return s
	}
	return ""
}
