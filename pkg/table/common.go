package table

import (
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

func validateCommon(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	var errs []issue.ValidationError

	hasColumn := predicate.HasCodeSystem(item, model.SystemTableOrderingColumn)
	hasFunctions := predicate.HasCodeSystem(item, model.SystemTableOrderingFunctions)
	switch {
	case hasColumn && !hasFunctions:
		errs = append(errs, issue.Error(item.LinkID, issue.PropCode, tr(issue.MsgTableOrderingColumnNeedsFunctions)))
	case hasFunctions && !hasColumn:
		errs = append(errs, issue.Error(item.LinkID, issue.PropCode, tr(issue.MsgTableOrderingFunctionsNeedsColumn)))
	}

	// Ordering columns are encoded as the linkId of a direct child. Other
	// encodings are reported as a warning only.
	children := snap.Children(item.LinkID)
	for i, c := range item.Code {
		if c.System != model.SystemTableOrderingColumn || c.Code == "" {
			continue
		}
		if !contains(children, c.Code) {
			errs = append(errs, issue.Warning(item.LinkID, issue.PropCode, tr(issue.MsgTableOrderingColumnUnknown, c.Code)).At(i))
		}
	}

	for _, d := range descendantItems(item, snap) {
		if d.Type == model.ItemTypeDisplay || d.ReadOnly {
			continue
		}
		errs = append(errs, issue.Error(item.LinkID, issue.PropReadOnly, tr(issue.MsgTableChildReadOnly, d.LinkID)))
	}

	if len(children) == 0 {
		errs = append(errs, issue.Error(item.LinkID, issue.PropItem, tr(issue.MsgTableEmpty)))
	}
	return errs
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
