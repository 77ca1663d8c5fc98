package service

import (
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCertificates(f *fixture) *CertificateService {
	return NewCertificateService(f.certs, f.modules, f.users, f.progress, f.db)
}

func markModuleCompleted(t *testing.T, f *fixture, userID, moduleID uint) {
	t.Helper()
	require.NoError(t, f.progress.CreateCompletedModule(userID, moduleID))
}

func TestIssue_RequiresCompletedModule(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "ada")
	module := f.createModule(t, "Constructions")

	_, err := newCertificates(f).Issue(user.ID, module.ID)
	assert.ErrorIs(t, err, util.ErrModuleIncomplete)

	var rows int64
	require.NoError(t, f.db.Model(&model.Certificate{}).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestIssue_UnknownModule(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "ada")

	_, err := newCertificates(f).Issue(user.ID, 999)
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestIssue_OncePerUserAndModule(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "ben")
	module := f.createModule(t, "Pythagoras")
	markModuleCompleted(t, f, user.ID, module.ID)

	svc := newCertificates(f)

	first, err := svc.Issue(user.ID, module.ID)
	require.NoError(t, err)
	assert.False(t, first.AlreadyIssued)
	assert.Equal(t, 1, first.Certificate.CertificateNumber)
	assert.NotEmpty(t, first.Certificate.Code)

	again, err := svc.Issue(user.ID, module.ID)
	require.NoError(t, err)
	assert.True(t, again.AlreadyIssued)
	assert.Equal(t, first.Certificate.ID, again.Certificate.ID)
	assert.Equal(t, first.Certificate.CertificateNumber, again.Certificate.CertificateNumber)

	var rows int64
	require.NoError(t, f.db.Model(&model.Certificate{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestIssue_NumbersIncrease(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	geometry := f.createModule(t, "Geometry basics")
	trigonometry := f.createModule(t, "Trigonometry")
	markModuleCompleted(t, f, alice.ID, geometry.ID)
	markModuleCompleted(t, f, alice.ID, trigonometry.ID)
	markModuleCompleted(t, f, bob.ID, geometry.ID)

	svc := newCertificates(f)

	c1, err := svc.Issue(alice.ID, geometry.ID)
	require.NoError(t, err)
	c2, err := svc.Issue(bob.ID, geometry.ID)
	require.NoError(t, err)
	c3, err := svc.Issue(alice.ID, trigonometry.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, c1.Certificate.CertificateNumber)
	assert.Equal(t, 2, c2.Certificate.CertificateNumber)
	assert.Equal(t, 3, c3.Certificate.CertificateNumber)
	assert.NotEqual(t, c1.Certificate.Code, c2.Certificate.Code)
}

func TestVerify(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "carla")
	module := f.createModule(t, "Solid geometry")
	markModuleCompleted(t, f, user.ID, module.ID)

	svc := newCertificates(f)
	issued, err := svc.Issue(user.ID, module.ID)
	require.NoError(t, err)

	verified, err := svc.Verify(issued.Certificate.Code)
	require.NoError(t, err)
	assert.Equal(t, issued.Certificate.ID, verified.Certificate.ID)
	assert.Equal(t, user.Name, verified.StudentName)
	assert.Equal(t, module.Title, verified.ModuleTitle)

	_, err = svc.Verify("no-such-code")
	assert.ErrorIs(t, err, util.ErrCertificateNotFound)
}

func TestListByUser(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "dan")
	first := f.createModule(t, "Angles")
	second := f.createModule(t, "Circles")
	markModuleCompleted(t, f, user.ID, first.ID)
	markModuleCompleted(t, f, user.ID, second.ID)

	svc := newCertificates(f)
	_, err := svc.Issue(user.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Issue(user.ID, second.ID)
	require.NoError(t, err)

	certs, err := svc.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, certs, 2)
}
