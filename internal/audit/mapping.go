package audit

import (
	"strings"
	"unicode"
)

// OperationName turns a gRPC full method (e.g. /tenant.v1.TenantService/CheckAccess) into the
// resource recorded on audit entries ("tenant.check_access"). Anything that is not a full method
// is returned unchanged, so HTTP routes such as "POST /api/v1/access/check" pass through.
func OperationName(fullMethod string) string {
	if !strings.HasPrefix(fullMethod, "/") {
		return fullMethod
	}
	slash := strings.LastIndex(fullMethod, "/")
	if slash < 1 {
		return "unknown"
	}
	service, method := fullMethod[1:slash], fullMethod[slash+1:]
	if method == "" {
		return "unknown"
	}
	if dot := strings.LastIndex(service, "."); dot >= 0 {
		service = service[dot+1:]
	}
	service = snake(strings.TrimSuffix(service, "Service"))
	if service == "" {
		return snake(method)
	}
	return service + "." + snake(method)
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
