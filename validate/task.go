package validate

import "github.com/BaSui01/fusionbrain-go/types"

// Task builds a task snapshot from decoded JSON.
//
// uuid and status are required non-empty strings; both are checked before
// failing. images, errorDescription, censored and generationTime are kept only
// when present with the right type; anything else is dropped so that drift in
// non-essential fields does not break polling. images is all or nothing: an
// array holding any non-string element is dropped whole, not filtered, so
// Images is either every payload the server sent or nil.
func Task(v any) (types.Task, error) {
	c, err := newChecker("Task", v)
	if err != nil {
		return types.Task{}, err
	}

	id := c.requireString("uuid", false)
	status := c.requireString("status", false)
	if err := c.err(); err != nil {
		return types.Task{}, err
	}

	return types.Task{
		ID:               id,
		Status:           types.TaskStatus(status),
		Images:           c.optionalStrings("images"),
		ErrorDescription: c.optionalString("errorDescription"),
		Censored:         c.optionalBool("censored"),
		GenerationTime:   c.optionalNumber("generationTime"),
	}, nil
}
