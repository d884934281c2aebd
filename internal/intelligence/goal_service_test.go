package intelligence

import (
	"context"
	"testing"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalActions_ParsesNumberedLines(t *testing.T) {
	mock := &mockLLMClient{response: "好的，建议如下：\n1. 列出三个可变现的技能\n2、联系一位做副业的朋友\n3) **写一篇经验分享**\n4. 多余的一条"}
	svc := NewGoalService(mock, testSelector(), nil)

	got, err := svc.GoalActions(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, SourceAI, got.Source)
	assert.Equal(t, []string{"列出三个可变现的技能", "联系一位做副业的朋友", "写一篇经验分享"}, got.Actions)
	assert.Equal(t, llm.TaskGoalActions, mock.last.Task)
	assert.Contains(t, mock.last.UserPrompt, "年底前副业月入一万")
}

func TestGoalActions_FallbackUsesRanking(t *testing.T) {
	sel := testSelector()
	svc := NewGoalService(&mockLLMClient{err: llm.ErrUnavailable}, sel, nil)

	got, err := svc.GoalActions(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, got.Source)

	ranked, err := sel.Explain(testProfile())
	require.NoError(t, err)
	require.Len(t, got.Actions, 3)
	for i := range got.Actions {
		assert.Equal(t, ranked[i].Template.Title, got.Actions[i])
	}
}

func TestGoalActions_FallbackOnUnparseable(t *testing.T) {
	svc := NewGoalService(&mockLLMClient{response: "没有编号的回答"}, testSelector(), nil)

	got, err := svc.GoalActions(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, got.Source)
	assert.Len(t, got.Actions, 3)
}

func TestGoalActions_RequiresGoal(t *testing.T) {
	svc := NewGoalService(&mockLLMClient{}, testSelector(), nil)
	p := testProfile()
	p.Goal = "  "

	_, err := svc.GoalActions(context.Background(), p)
	assert.ErrorIs(t, err, ErrGoalRequired)

	_, err = svc.GoalActions(context.Background(), domain.Profile{Goal: "x"})
	assert.Error(t, err)
}

func TestValidateGoal(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		err        error
		valid      bool
		suggestion string
	}{
		{name: "valid", response: "VALID", valid: true},
		{name: "invalid with reason", response: "INVALID，目标与财富增长无关", valid: false, suggestion: "目标与财富增长无关"},
		{name: "invalid with colon", response: "INVALID: 太模糊", valid: false, suggestion: "太模糊"},
		{name: "unexpected answer", response: "也许吧", valid: true},
		{name: "llm error", err: llm.ErrTimeout, valid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGoalService(&mockLLMClient{response: tt.response, err: tt.err}, testSelector(), nil)
			got, err := svc.ValidateGoal(context.Background(), "三年存够首付")
			require.NoError(t, err)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.suggestion, got.Suggestion)
		})
	}
}

func TestValidateGoal_NilClientAccepts(t *testing.T) {
	svc := NewGoalService(nil, testSelector(), nil)
	got, err := svc.ValidateGoal(context.Background(), "学会理财")
	require.NoError(t, err)
	assert.True(t, got.Valid)

	_, err = svc.ValidateGoal(context.Background(), "")
	assert.ErrorIs(t, err, ErrGoalRequired)
}
