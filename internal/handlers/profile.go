package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"askfun/internal/catalog"
	"askfun/internal/config"
	"askfun/internal/db"
	"askfun/internal/markup"
	"askfun/internal/metrics"
	"askfun/internal/middleware"
	"askfun/internal/models"
	"askfun/internal/sendmodal"
	"askfun/internal/services"
	"askfun/internal/validation"
)

// ProfileHandler renders public community profiles and their send modal.
type ProfileHandler struct {
	profiles *services.ProfileService
	catalog  *catalog.Catalog
	cfg      *config.Config
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles *services.ProfileService, c *catalog.Catalog, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, catalog: c, cfg: cfg}
}

func profilePath(handle string) string {
	return "/communities/" + handle
}

// Show renders the profile page. The send query value decides whether the modal is open.
func (h *ProfileHandler) Show(c fiber.Ctx) error {
	profile, err := h.profiles.Get(c.Context(), c.Params("profile"))
	if err != nil {
		return h.profileError(c, err)
	}

	nav := sendmodal.NewURLNavigation(profilePath(profile.Handle), requestQuery(c))
	labels := sessionLabels(c, profile.Handle)
	modal := sendmodal.NewModal(nav, h.catalog, labels)

	sel := modal.Selection()
	if sel.Present() {
		metrics.RecordOptionView(profile.Handle, sel.Option.Key, outcomeFor(sel))
	}

	return c.Render("profile", h.pageData(profile, h.view(c, modal, labels), nav))
}

// Send handles open/close intents from either shell. The form carries the page
// query so other parameters survive; closing clears only send. HTMX callers get
// the send section back, others are redirected.
func (h *ProfileHandler) Send(c fiber.Ctx) error {
	profile, err := h.profiles.Get(c.Context(), c.Params("profile"))
	if err != nil {
		return h.profileError(c, err)
	}

	query, err := url.ParseQuery(c.FormValue("query"))
	if err != nil {
		query = url.Values{}
	}
	query.Del(sendmodal.SendParam)
	if send := c.FormValue(sendmodal.SendParam); send != "" {
		query.Set(sendmodal.SendParam, send)
	}
	nav := sendmodal.NewURLNavigation(profilePath(profile.Handle), query)
	labels := sessionLabels(c, profile.Handle)
	modal := sendmodal.NewModal(nav, h.catalog, labels)

	modal.OnOpenChange(c.FormValue("open") == "true")

	if !isHTMX(c) {
		return c.Redirect().Status(fiber.StatusSeeOther).To(nav.URL())
	}

	c.Set("HX-Push-Url", nav.URL())
	return c.Render("partials/send_section", h.pageData(profile, h.view(c, modal, labels), nav), "")
}

// view renders the modal for the request viewport. A closed render is the one
// closing transition, so the previous label is dropped once it has been shown.
func (h *ProfileHandler) view(c fiber.Ctx, modal *sendmodal.Modal, labels sendmodal.LabelMemory) sendmodal.View {
	shell := sendmodal.SelectShell(middleware.ViewportFrom(c), h.cfg.DesktopBreakpoint)
	v := modal.View(shell)
	if !v.Open {
		labels.SetPreviousLabel("")
	}
	return v
}

func (h *ProfileHandler) pageData(profile *models.Profile, view sendmodal.View, nav *sendmodal.URLNavigation) fiber.Map {
	affiliation := ""
	if profile.Affiliation != nil {
		affiliation = *profile.Affiliation
	}
	about := ""
	if profile.About != nil {
		about = *profile.About
	}
	socialLink := ""
	if profile.HasSocialLink() {
		socialLink = validation.SafeLink(profile.FBPage)
	}

	return MergeBranding(fiber.Map{
		"Title":            profile.EntityName,
		"Profile":          profile,
		"Avatar":           profile.Avatar(h.cfg.DefaultAvatarURL),
		"HandleBadge":      profile.HandleBadge(),
		"Affiliation":      affiliation,
		"About":            markup.RenderAbout(about),
		"SocialLink":       socialLink,
		"ShareURL":         h.cfg.ProfileURL(profile.Handle),
		"QRCodeURL":        profilePath(profile.Handle) + "/qr.png",
		"SendAction":       profilePath(profile.Handle) + "/send",
		"Modal":            view,
		"PageQuery":        nav.RawQuery(),
		"PrivacyStatement": h.cfg.PrivacyStatement,
		"LockIcon":         catalog.IconSVG("lock"),
		"FacebookIcon":     catalog.IconSVG("facebook"),
		"ShareIcon":        catalog.IconSVG("share"),
	}, h.cfg)
}

// profileError turns a failed lookup into a 404 page, or hands it to the app error handler.
func (h *ProfileHandler) profileError(c fiber.Ctx, err error) error {
	if !errors.Is(err, db.ErrProfileNotFound) {
		return err
	}
	if isHTMX(c) {
		return htmxError(c, "This community does not exist.")
	}
	return c.Status(fiber.StatusNotFound).Render("error", MergeBranding(fiber.Map{
		"Title":   "Not Found",
		"Message": "The community '" + c.Params("profile") + "' does not exist.",
	}, h.cfg))
}

func outcomeFor(sel sendmodal.Selection) string {
	if sel.Kind == sendmodal.SelectionKnown {
		return models.OutcomeKnown
	}
	return models.OutcomeUnknown
}

// sessionLabels stores the previous modal title in the visitor session, one per profile.
func sessionLabels(c fiber.Ctx, handle string) sendmodal.LabelMemory {
	sess := session.FromContext(c)
	if sess == nil {
		return &sendmodal.MemoryLabels{}
	}
	return &labelSession{sess: sess, key: "prev_label:" + handle}
}

type labelSession struct {
	sess *session.Middleware
	key  string
}

func (l *labelSession) PreviousLabel() string {
	label, _ := l.sess.Get(l.key).(string)
	return label
}

func (l *labelSession) SetPreviousLabel(label string) {
	if label == "" {
		l.sess.Delete(l.key)
		return
	}
	l.sess.Set(l.key, label)
}
