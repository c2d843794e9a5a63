package task

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ayush/donepath/internal/common"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// taskForm is the validated input for the add and edit operations.
type taskForm struct {
	content  string
	dueDate  *time.Time
	dueTime  *string
	priority int
}

// parseTaskForm validates the task form fields. Priority defaults to 1 when
// absent on add; edit requires it. A present but unparseable priority is
// rejected on both paths.
func parseTaskForm(r *http.Request, requirePriority bool) (*taskForm, error) {
	f := &taskForm{content: strings.TrimSpace(r.PostFormValue("content")), priority: 1}

	if s := r.PostFormValue("due_date"); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, common.ErrInvalidDateFormat
		}
		d = DateOnly(d)
		f.dueDate = &d
	}

	if s := r.PostFormValue("due_time"); s != "" {
		if _, err := time.Parse(timeLayout, s); err != nil {
			return nil, common.ErrInvalidTimeFormat
		}
		f.dueTime = &s
	}

	if s := r.PostFormValue("priority"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil {
			return nil, common.ErrMissingField
		}
		f.priority = p
	} else if requirePriority {
		return nil, common.ErrMissingField
	}

	return f, nil
}
