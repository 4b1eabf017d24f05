package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/intechds/storefront/internal/adapters/scraper"
	"github.com/intechds/storefront/internal/domain"
	"github.com/intechds/storefront/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	catalog  *usecase.CatalogUC
	orders   *usecase.OrderUC
	quotes   *usecase.QuoteUC
	reviews  *usecase.ReviewUC
	auth     *usecase.AuthUC
	users    domain.UserRepo
	settings domain.SettingsRepo
	about    domain.AboutRepo
	services domain.ServicesRepo
	storage  domain.FileStorage
	scanner  *scraper.ImageScraper
	notifier *OrderNotifier

	uploadsDir string
}

func New(catalog *usecase.CatalogUC, orders *usecase.OrderUC, quotes *usecase.QuoteUC, reviews *usecase.ReviewUC, auth *usecase.AuthUC, users domain.UserRepo, settings domain.SettingsRepo, about domain.AboutRepo, services domain.ServicesRepo, storage domain.FileStorage, scanner *scraper.ImageScraper, notifier *OrderNotifier, uploadsDir string) http.Handler {
	s := &Server{
		mux:        http.NewServeMux(),
		catalog:    catalog,
		orders:     orders,
		quotes:     quotes,
		reviews:    reviews,
		auth:       auth,
		users:      users,
		settings:   settings,
		about:      about,
		services:   services,
		storage:    storage,
		scanner:    scanner,
		notifier:   notifier,
		uploadsDir: uploadsDir,
	}
	s.routes()
	return Chain(s.mux,
		PublicRateLimit(map[string]int{
			"/api/orders":        10,
			"/api/quotes":        15,
			"/api/reviews":       15,
			"/api/auth/register": 10,
		}),
		RateLimit(120),
		Gzip,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadsDir))))

	s.mux.HandleFunc("/healthz", s.handleHealthz)

	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/orders", s.apiOrders)
	s.mux.HandleFunc("/api/quotes", s.apiQuotes)
	s.mux.HandleFunc("/api/reviews", s.apiReviews)
	s.mux.HandleFunc("/api/settings", s.apiSettings)
	s.mux.HandleFunc("/api/about", s.apiAbout)
	s.mux.HandleFunc("/api/services", s.apiServices)

	s.mux.HandleFunc("/api/auth", s.apiAdminAuth)
	s.mux.HandleFunc("/api/auth/login", s.apiLogin)
	s.mux.HandleFunc("/api/auth/register", s.apiRegister)

	s.mux.HandleFunc("/api/admin/users", s.apiAdminUsers)
	s.mux.HandleFunc("/api/upload", s.apiUpload)

	s.mux.HandleFunc("/admin/export/products", s.handleExportProducts)
	s.mux.HandleFunc("/admin/export/orders", s.handleExportOrders)
	s.mux.HandleFunc("/admin/products/scan", s.handleProductScan)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireAdmin accepts the token bare or with a Bearer prefix. A missing or
// invalid token answers 401 and the caller must return.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	tok := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(tok), "bearer ") {
		tok = strings.TrimSpace(tok[7:])
	}
	if s.auth.ValidateToken(tok) {
		return true
	}
	writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	return false
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		f := domain.ProductFilter{
			Query:    q.Get("search"),
			Category: q.Get("category"),
			Sort:     domain.SortKey(q.Get("sort")),
		}
		if q.Get("featured") == "true" {
			t := true
			f.Featured = &t
		}
		products, err := s.catalog.Search(r.Context(), f)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, paginate(products, q.Get("page"), q.Get("pageSize")))
	case http.MethodPost:
		if !s.requireAdmin(w, r) {
			return
		}
		var p domain.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		if err := s.catalog.Create(r.Context(), &p); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var p domain.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		if err := s.catalog.Replace(r.Context(), &p); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		if !s.requireAdmin(w, r) {
			return
		}
		var body struct {
			ID int `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		if err := s.catalog.Delete(r.Context(), body.ID); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	default:
		methodNotAllowed(w)
	}
}

// paginate slices the full filtered result; no page param means the whole
// collection, which is what the storefront consumes.
func paginate[T any](all []T, pageStr, sizeStr string) []T {
	if pageStr == "" {
		return all
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 {
		size = 20
	}
	start := (page - 1) * size
	if start >= len(all) {
		return []T{}
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

func (s *Server) apiOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if !s.requireAdmin(w, r) {
			return
		}
		orders, err := s.orders.List(r.Context())
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, orders)
	case http.MethodPost:
		var in usecase.OrderInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		o, err := s.orders.Create(r.Context(), in)
		if err != nil {
			s.fail(w, err)
			return
		}
		if s.notifier != nil {
			go s.notifier.OrderCreated(o)
		}
		writeJSON(w, http.StatusCreated, o)
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var body struct {
			ID string `json:"id"`
			usecase.OrderPatch
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		o, err := s.orders.Patch(r.Context(), body.ID, body.OrderPatch)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) apiQuotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if !s.requireAdmin(w, r) {
			return
		}
		quotes, err := s.quotes.List(r.Context())
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, quotes)
	case http.MethodPost:
		var in usecase.QuoteInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		q, err := s.quotes.Create(r.Context(), in)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, q)
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var body struct {
			ID string `json:"id"`
			usecase.QuotePatch
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		q, err := s.quotes.Patch(r.Context(), body.ID, body.QuotePatch)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) apiReviews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if pid := r.URL.Query().Get("productId"); pid != "" {
			id, err := strconv.Atoi(pid)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid productId"})
				return
			}
			reviews, err := s.reviews.ListByProduct(r.Context(), id)
			if err != nil {
				s.fail(w, err)
				return
			}
			writeJSON(w, http.StatusOK, reviews)
			return
		}
		reviews, err := s.reviews.List(r.Context())
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
	case http.MethodPost:
		var in usecase.ReviewInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		rv, err := s.reviews.Create(r.Context(), in)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rv)
	case http.MethodDelete:
		if !s.requireAdmin(w, r) {
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ต้องระบุ review ID"})
			return
		}
		if err := s.reviews.Delete(r.Context(), id); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) apiSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		settings, err := s.settings.Get(r.Context())
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var in domain.SiteSettings
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		if err := s.settings.Save(r.Context(), in); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, in)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) apiAbout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		about, err := s.about.Get(r.Context())
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, about)
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var in domain.AboutData
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		if err := s.about.Save(r.Context(), in); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, in)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) apiServices(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		services, err := s.services.List(r.Context())
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, services)
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var in []domain.ServiceItem
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		if err := s.services.Save(r.Context(), in); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, in)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) apiAdminAuth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	token, err := s.auth.AdminLogin(body.Username, body.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}

func (s *Server) apiLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	u, err := s.auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": u.Public()})
}

func (s *Server) apiRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var in usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	u, err := s.auth.Register(r.Context(), in)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": u.Public()})
}

func (s *Server) apiAdminUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	users, err := s.users.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	safe := make([]domain.User, len(users))
	for i, u := range users {
		safe[i] = u.WithoutPassword()
	}
	writeJSON(w, http.StatusOK, safe)
}

const maxUploadBytes = 4 << 20

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (s *Server) apiUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+4096)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "File too large (max 4MB)"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file provided"})
		return
	}
	defer file.Close()
	if header.Size > maxUploadBytes {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "File too large (max 4MB)"})
		return
	}
	if !allowedUploadTypes[header.Header.Get("Content-Type")] {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid file type"})
		return
	}
	url, err := s.storage.Save(r.Context(), header.Filename, file)
	if err != nil {
		log.Error().Err(err).Msg("upload save")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Upload failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// handleProductScan fills in images for products that have none.
func (s *Server) handleProductScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	if s.scanner == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "scanner disabled"})
		return
	}
	products, err := s.catalog.Search(r.Context(), domain.ProductFilter{})
	if err != nil {
		s.fail(w, err)
		return
	}
	found := map[int][]string{}
	scanned := 0
	for _, p := range products {
		if len(p.Images) > 0 {
			continue
		}
		scanned++
		imgs, err := s.scanner.SearchImages(r.Context(), p.Name, p.Brand, p.SKU, 4)
		if err != nil {
			log.Warn().Err(err).Int("product", p.ID).Msg("image scan")
			continue
		}
		found[p.ID] = imgs
	}
	if len(found) > 0 {
		err = s.catalog.Products.Update(r.Context(), func(all []domain.Product) ([]domain.Product, error) {
			for i := range all {
				if imgs, ok := found[all[i].ID]; ok && len(all[i].Images) == 0 {
					all[i].Images = imgs
				}
			}
			return all, nil
		})
		if err != nil {
			s.fail(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]int{"scanned": scanned, "updated": len(found)})
}

// fail maps domain errors onto the fixed status/message taxonomy.
func (s *Server) fail(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Msg})
		return
	}
	var ae *domain.AuthError
	if errors.As(err, &ae) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": ae.Msg})
		return
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
		return
	}
	log.Error().Err(err).Msg("internal")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "เกิดข้อผิดพลาด"})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
