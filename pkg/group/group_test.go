package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/model/modeltest"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

func repeating(linkID string, exts ...model.Extension) *model.Item {
	item := modeltest.Item(linkID, model.ItemTypeGroup, exts...)
	item.Repeats = true
	return item
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		build  func() *model.Document
		linkID string
		want   []string
	}{
		{
			name: "repeating group inside group",
			build: func() *model.Document {
				return modeltest.New().
					Add("", modeltest.Item("g", model.ItemTypeGroup)).
					Add("g", repeating("r")).Doc()
			},
			linkID: "r",
		},
		{
			name: "repeating group at root",
			build: func() *model.Document {
				return modeltest.New().Add("", repeating("r")).Doc()
			},
			linkID: "r",
			want:   []string{issue.MsgRepeatingGroupNotInGroup},
		},
		{
			name: "repeating group under a question",
			build: func() *model.Document {
				return modeltest.New().
					Add("", modeltest.Item("q", model.ItemTypeString)).
					Add("q", repeating("r")).Doc()
			},
			linkID: "r",
			want:   []string{issue.MsgRepeatingGroupNotInGroup},
		},
		{
			name: "repeating step",
			build: func() *model.Document {
				return modeltest.New().
					Add("", modeltest.Item("g", model.ItemTypeGroup)).
					Add("g", repeating("r", modeltest.Control(model.ControlStep))).Doc()
			},
			linkID: "r",
			want:   []string{issue.MsgRepeatingGroupStep},
		},
		{
			name: "repeating step at root",
			build: func() *model.Document {
				return modeltest.New().Add("", repeating("r", modeltest.Control(model.ControlStep))).Doc()
			},
			linkID: "r",
			want:   []string{issue.MsgRepeatingGroupNotInGroup, issue.MsgRepeatingGroupStep},
		},
		{
			name: "non-repeating group at root",
			build: func() *model.Document {
				return modeltest.New().Add("", modeltest.Item("g", model.ItemTypeGroup, modeltest.Control(model.ControlStep))).Doc()
			},
			linkID: "g",
		},
		{
			name: "repeating question is not a group",
			build: func() *model.Document {
				item := modeltest.Item("q", model.ItemTypeString)
				item.Repeats = true
				return modeltest.New().Add("", item).Doc()
			},
			linkID: "q",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := tt.build()
			errs := Validate(issue.DefaultTranslator, doc.Items[tt.linkID], snapshot.New(doc))
			require.Len(t, errs, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, errs[i].Text)
				assert.Equal(t, tt.linkID, errs[i].LinkID)
				assert.Equal(t, issue.LevelError, errs[i].Level)
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	assert.Empty(t, Validate(issue.DefaultTranslator, nil, snapshot.New(nil)))
}
