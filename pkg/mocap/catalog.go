package mocap

import "github.com/cooper-710/mocap-app/pkg/mocap/models"

// PitcherMetrics is the fixed whitelist of metrics extracted for the
// pitcher role, in display order.
var PitcherMetrics = []models.MetricSpec{
	{Label: "Pelvis Twist Velocity (X)", Key: "/Calc/Pelvis/Twist/Velocity_x"},
	{Label: "Torso Twist Velocity (X)", Key: "/Calc/Torso/Twist/Velocity_x"},
	{Label: "Elbow Flexion/Extension Velocity, dominant", Key: "/Calc/Elbow/Dominant/Flexion/Extension/Velocity_x"},
	{Label: "Shoulder Internal/External Rotation Velocity, dominant", Key: "/Calc/Shoulder/Dominant/Internal/External/Velocity_x"},
	{Label: "Trunk Forward Flexion", Key: "/Calc/Trunk/Forward/Flexion/Angle_x"},
	{Label: "Lead Knee Flexion/Extension", Key: "/Calc/Knee/Lead/Flexion/Extension/Angle_x"},
}

// HitterMetrics is the fixed whitelist of metrics extracted for the
// hitter role, in display order.
var HitterMetrics = []models.MetricSpec{
	{Label: "Pelvis Twist Velocity (X)", Key: "/Calc/Pelvis/Twist/Velocity_x"},
	{Label: "Torso Twist Velocity (X)", Key: "/Calc/Torso/Twist/Velocity_x"},
	{Label: "X-Factor Twist Angle", Key: "/Calc/XFactor/Twist/Angle_x"},
	{Label: "Lead Wrist Radial/Ulnar Velocity", Key: "/Calc/Wrist/Lead/Radial/Ulnar/Velocity_x"},
	{Label: "Lead Knee Flexion/Extension Velocity", Key: "/Calc/Knee/Lead/Flexion/Extension/Velocity_x"},
}

// ColumnAliases maps canonical column keys to the mistyped variants that
// appear in known exports (path segments missing their separator). The
// table is hand-curated and consulted only after direct and
// whitespace-insensitive lookups fail; it is never inferred from data.
var ColumnAliases = map[string]string{
	"/Calc/Elbow/Dominant/Flexion/Extension/Velocity_x":    "/Calc/Elbow/Dominant/FlexionExtension/Velocity_x",
	"/Calc/Shoulder/Dominant/Internal/External/Velocity_x": "/Calc/Shoulder/Dominant/InternalExternal/Velocity_x",
	"/Calc/Knee/Lead/Flexion/Extension/Angle_x":            "/Calc/Knee/Lead/FlexionExtension/Angle_x",
	"/Calc/Knee/Lead/Flexion/Extension/Velocity_x":         "/Calc/Knee/Lead/FlexionExtension/Velocity_x",
	"/Calc/Wrist/Lead/Radial/Ulnar/Velocity_x":             "/Calc/Wrist/Lead/RadialUlnar/Velocity_x",
}

// MetricsForRole returns the whitelist for a role, nil for unknown roles.
func MetricsForRole(role models.Role) []models.MetricSpec {
	switch role {
	case models.RolePitcher:
		return PitcherMetrics
	case models.RoleHitter:
		return HitterMetrics
	default:
		return nil
	}
}
