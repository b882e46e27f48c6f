package model

// Clone returns a deep copy of the ref slice.
func cloneRefs(refs []TalentRef) []TalentRef {
	if refs == nil {
		return nil
	}
	out := make([]TalentRef, len(refs))
	copy(out, refs)
	return out
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	t.PlayerIDs = cloneRefs(t.PlayerIDs)
	return t
}

// Clone returns a deep copy of the schedule item.
func (s ScheduleItem) Clone() ScheduleItem {
	if s.Teams != nil {
		teams := make([]Team, len(s.Teams))
		for i, team := range s.Teams {
			teams[i] = team.Clone()
		}
		s.Teams = teams
	}
	s.CommentatorIDs = cloneRefs(s.CommentatorIDs)
	s.TalentIDs = cloneRefs(s.TalentIDs)
	if s.TwitchCategory != nil {
		category := *s.TwitchCategory
		s.TwitchCategory = &category
	}
	if s.Completed != nil {
		completed := *s.Completed
		s.Completed = &completed
	}
	return s
}

// Clone returns a deep copy of the schedule.
func (s Schedule) Clone() Schedule {
	if s.Items != nil {
		items := make([]ScheduleItem, len(s.Items))
		for i, item := range s.Items {
			items[i] = item.Clone()
		}
		s.Items = items
	}
	return s
}

// CloneTalent returns a deep copy of a talent list.
func CloneTalent(talent []TalentItem) []TalentItem {
	if talent == nil {
		return nil
	}
	out := make([]TalentItem, len(talent))
	copy(out, talent)
	return out
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Schedule = s.Schedule.Clone()
	s.Talent = CloneTalent(s.Talent)
	return s
}
