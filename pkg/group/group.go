// Package group validates group items and repeatable groups.
package group

import (
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// Validate checks that a repeating group sits inside another group and is
// not presented as a step.
func Validate(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	if item == nil || item.Type != model.ItemTypeGroup || !item.Repeats {
		return nil
	}
	var errs []issue.ValidationError

	parent := snap.ParentItem(item.LinkID)
	if parent == nil || parent.Type != model.ItemTypeGroup {
		errs = append(errs, issue.Error(item.LinkID, issue.PropRepeats, tr(issue.MsgRepeatingGroupNotInGroup)))
	}
	if snap.TraitsOf(item).HasControl(model.ControlStep) {
		errs = append(errs, issue.Error(item.LinkID, issue.PropItemControl, tr(issue.MsgRepeatingGroupStep)))
	}
	return errs
}
