package database_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tracker/database"
	"tracker/models"
)

// openTestDB gives every test a fresh SQLite database in a temp dir.
func openTestDB(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return database.New(db)
}

func addUser(t *testing.T, db database.Database, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	if err := db.UserRepo().Add(user); err != nil {
		t.Fatalf("adding user %s: %v", username, err)
	}
	return user
}

func addProject(t *testing.T, db database.Database, owner *models.User, name string) *models.Project {
	t.Helper()
	project := &models.Project{OwnerID: owner.ID, Name: name}
	if err := db.ProjectRepo().Add(project); err != nil {
		t.Fatalf("adding project %s: %v", name, err)
	}
	return project
}

func addIssue(t *testing.T, db database.Database, project *models.Project, creator *models.User, title string) *models.Issue {
	t.Helper()
	issue := &models.Issue{
		ProjectID:   project.ID,
		Title:       title,
		CreatedByID: creator.ID,
		State:       models.IssueStateOpen,
		Priority:    models.IssuePriorityNormal,
	}
	if err := db.IssueRepo().Add(issue); err != nil {
		t.Fatalf("adding issue %s: %v", title, err)
	}
	return issue
}

func addComment(t *testing.T, db database.Database, issue *models.Issue, author *models.User, body string) *models.Comment {
	t.Helper()
	comment := &models.Comment{IssueID: issue.ID, AuthorID: author.ID, Body: body}
	if err := db.CommentRepo().Add(comment); err != nil {
		t.Fatalf("adding comment: %v", err)
	}
	return comment
}

func TestUserUniqueUsername(t *testing.T) {
	db := openTestDB(t)
	addUser(t, db, "ada")

	dup := &models.User{Username: "ada", Email: "other@example.com", PasswordHash: "hash"}
	if err := db.UserRepo().Add(dup); err == nil {
		t.Fatal("inserting a duplicate username should fail")
	}
}

func TestProfileUpsertKeepsOneRow(t *testing.T) {
	db := openTestDB(t)
	user := addUser(t, db, "ada")

	first := &models.UserProfile{UserID: user.ID, Avatar: "https://example.com/a.png", Bio: "first"}
	if err := db.ProfileRepo().Upsert(first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := &models.UserProfile{UserID: user.ID, Avatar: "https://example.com/b.png", Bio: "second"}
	if err := db.ProfileRepo().Upsert(second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("second upsert should reuse the profile row, got %v and %v", first.ID, second.ID)
	}

	profile, err := db.ProfileRepo().FindByUserID(user.ID)
	if err != nil {
		t.Fatalf("finding profile: %v", err)
	}
	if profile.Bio != "second" {
		t.Errorf("profile bio = %q, want %q", profile.Bio, "second")
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	db := openTestDB(t)
	user := addUser(t, db, "ada")
	project := addProject(t, db, user, "tracker")
	issue := addIssue(t, db, project, user, "first bug")
	comment := addComment(t, db, issue, user, "looking into it")

	// An unrelated project must survive
	other := addProject(t, db, user, "other")
	otherIssue := addIssue(t, db, other, user, "unrelated")

	if err := db.ProjectRepo().Delete(project.ID); err != nil {
		t.Fatalf("deleting project: %v", err)
	}

	if _, err := db.IssueRepo().FindByID(issue.ID); err == nil {
		t.Error("issues of a deleted project should be gone")
	}
	if _, err := db.CommentRepo().FindByID(comment.ID); err == nil {
		t.Error("comments of a deleted project's issues should be gone")
	}
	if _, err := db.IssueRepo().FindByID(otherIssue.ID); err != nil {
		t.Errorf("issue of an unrelated project should survive: %v", err)
	}
}

func TestDeleteIssueCascadesToComments(t *testing.T) {
	db := openTestDB(t)
	user := addUser(t, db, "ada")
	project := addProject(t, db, user, "tracker")
	issue := addIssue(t, db, project, user, "first bug")
	comment := addComment(t, db, issue, user, "on it")

	if err := db.IssueRepo().Delete(issue.ID); err != nil {
		t.Fatalf("deleting issue: %v", err)
	}

	if _, err := db.CommentRepo().FindByID(comment.ID); err == nil {
		t.Error("comments of a deleted issue should be gone")
	}
	if _, err := db.ProjectRepo().FindByID(project.ID); err != nil {
		t.Errorf("the parent project should survive: %v", err)
	}
}

func TestDeleteUserClearsAssignee(t *testing.T) {
	db := openTestDB(t)
	reporter := addUser(t, db, "ada")
	assignee := addUser(t, db, "grace")
	project := addProject(t, db, reporter, "tracker")

	issue := addIssue(t, db, project, reporter, "assigned bug")
	issue.AssigneeID = &assignee.ID
	if err := db.IssueRepo().Update(issue); err != nil {
		t.Fatalf("assigning issue: %v", err)
	}

	if err := db.UserRepo().Delete(assignee.ID); err != nil {
		t.Fatalf("deleting assignee: %v", err)
	}

	got, err := db.IssueRepo().FindByID(issue.ID)
	if err != nil {
		t.Fatalf("the issue should survive its assignee: %v", err)
	}
	if got.AssigneeID != nil {
		t.Errorf("assignee = %v, want nil", got.AssigneeID)
	}
}

func TestDeleteUserRemovesOwnedData(t *testing.T) {
	db := openTestDB(t)
	owner := addUser(t, db, "ada")
	commenter := addUser(t, db, "grace")
	project := addProject(t, db, owner, "tracker")
	issue := addIssue(t, db, project, owner, "bug")
	ownComment := addComment(t, db, issue, owner, "mine")
	otherComment := addComment(t, db, issue, commenter, "someone else's")

	if err := db.UserRepo().Delete(owner.ID); err != nil {
		t.Fatalf("deleting user: %v", err)
	}

	if _, err := db.UserRepo().FindByID(owner.ID); err == nil {
		t.Error("deleted user should be gone")
	}
	if _, err := db.ProjectRepo().FindByID(project.ID); err == nil {
		t.Error("owned projects should be gone")
	}
	if _, err := db.IssueRepo().FindByID(issue.ID); err == nil {
		t.Error("issues of owned projects should be gone")
	}
	if _, err := db.CommentRepo().FindByID(ownComment.ID); err == nil {
		t.Error("the user's comments should be gone")
	}
	// Comments by others on the deleted project's issues cascade with the issue
	if _, err := db.CommentRepo().FindByID(otherComment.ID); err == nil {
		t.Error("comments on deleted issues should be gone")
	}
	if _, err := db.UserRepo().FindByID(commenter.ID); err != nil {
		t.Errorf("unrelated users should survive: %v", err)
	}
}

func TestIssueFilters(t *testing.T) {
	db := openTestDB(t)
	user := addUser(t, db, "ada")
	assignee := addUser(t, db, "grace")
	project := addProject(t, db, user, "tracker")

	open := addIssue(t, db, project, user, "open issue")
	closed := addIssue(t, db, project, user, "closed issue")
	closed.State = models.IssueStateClosed
	closed.AssigneeID = &assignee.ID
	if err := db.IssueRepo().Update(closed); err != nil {
		t.Fatalf("closing issue: %v", err)
	}

	openOnly, err := db.IssueRepo().FindByProject(project.ID, database.IssueFilter{State: models.IssueStateOpen})
	if err != nil {
		t.Fatalf("filtering by state: %v", err)
	}
	if len(openOnly) != 1 || openOnly[0].ID != open.ID {
		t.Errorf("state filter returned %d issues, want just the open one", len(openOnly))
	}

	assigned, err := db.IssueRepo().FindByProject(project.ID, database.IssueFilter{Assignee: &assignee.ID})
	if err != nil {
		t.Fatalf("filtering by assignee: %v", err)
	}
	if len(assigned) != 1 || assigned[0].ID != closed.ID {
		t.Errorf("assignee filter returned %d issues, want just the assigned one", len(assigned))
	}

	all, err := db.IssueRepo().FindByProject(project.ID, database.IssueFilter{})
	if err != nil {
		t.Fatalf("listing issues: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered list returned %d issues, want 2", len(all))
	}
}

func TestTaskCRUD(t *testing.T) {
	db := openTestDB(t)

	task := &models.Task{Title: "write the docs", State: models.TaskStatePlanning, Points: 3}
	if err := db.TaskRepo().Add(task); err != nil {
		t.Fatalf("adding task: %v", err)
	}
	if task.ID == uuid.Nil {
		t.Fatal("Add should assign an ID")
	}

	task.State = models.TaskStateInProgress
	if err := db.TaskRepo().Update(task); err != nil {
		t.Fatalf("updating task: %v", err)
	}

	got, err := db.TaskRepo().FindByID(task.ID)
	if err != nil {
		t.Fatalf("finding task: %v", err)
	}
	if got.State != models.TaskStateInProgress {
		t.Errorf("state = %q, want %q", got.State, models.TaskStateInProgress)
	}
	if got.Points != 3 {
		t.Errorf("points = %d, want 3", got.Points)
	}

	inProgress, err := db.TaskRepo().FindAll(models.TaskStateInProgress)
	if err != nil {
		t.Fatalf("listing tasks: %v", err)
	}
	if len(inProgress) != 1 {
		t.Errorf("state filter returned %d tasks, want 1", len(inProgress))
	}

	if err := db.TaskRepo().Delete(task.ID); err != nil {
		t.Fatalf("deleting task: %v", err)
	}
	if _, err := db.TaskRepo().FindByID(task.ID); err == nil {
		t.Error("deleted task should be gone")
	}
}
