package cmd

import "testing"

func setTestHome(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
}

func TestSubjectsAdd_RejectsOutOfRangeCriteria(t *testing.T) {
	setTestHome(t)
	defer func() { flagSubjectCriteria = 0 }()

	flagSubjectCriteria = 150
	if err := runSubjectsAdd(nil, []string{"Physics"}); err == nil {
		t.Fatal("criteria 150 accepted")
	}

	flagSubjectCriteria = -10
	if err := runSubjectsAdd(nil, []string{"Physics"}); err == nil {
		t.Fatal("criteria -10 accepted")
	}
}

func TestSubjectsAdd_StoresValidCriteria(t *testing.T) {
	setTestHome(t)
	defer func() { flagSubjectCriteria = 0 }()

	flagSubjectCriteria = 80
	if err := runSubjectsAdd(nil, []string{"Physics"}); err != nil {
		t.Fatalf("runSubjectsAdd: %v", err)
	}

	app, err := loadApp()
	if err != nil {
		t.Fatalf("loadApp: %v", err)
	}
	defer app.Close()

	sub, ok := findSubject(app.Snapshot.Subjects, "Physics")
	if !ok {
		t.Fatal("subject not stored")
	}
	if sub.Criteria == nil || *sub.Criteria != 80 {
		t.Fatalf("Criteria = %v, want 80", sub.Criteria)
	}
}
