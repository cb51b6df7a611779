package bioflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateGetSet(t *testing.T) {
	st := make(State)
	assert.Empty(t, st.Get(StatePersonName))

	st.Set(StatePersonName, "Keir Starmer")
	assert.Equal(t, "Keir Starmer", st.Get(StatePersonName))

	st.Set(StatePersonName, "Rishi Sunak")
	assert.Equal(t, "Rishi Sunak", st.Get(StatePersonName))
}

func TestResolveInstruction(t *testing.T) {
	st := State{
		StatePersonName:   "Keir Starmer",
		StateResearchData: "born 1962 in Southwark",
	}

	out := resolveInstruction("Research {person_name} using {research_data}.", st)
	assert.Equal(t, "Research Keir Starmer using born 1962 in Southwark.", out)
}

func TestResolveInstructionMissingFieldIsEmpty(t *testing.T) {
	out := resolveInstruction("Follow-ups: {additional_research_needed}.", State{})
	assert.Equal(t, "Follow-ups: .", out)
}

func TestResolveInstructionLeavesPlainText(t *testing.T) {
	out := resolveInstruction("no placeholders here", State{"x": "y"})
	assert.Equal(t, "no placeholders here", out)
}

func TestStripThinkBlocks(t *testing.T) {
	assert.Equal(t, "answer", StripThinkBlocks("<think>internal musing</think>answer"))
	assert.Equal(t, "plain", StripThinkBlocks("plain"))
}
