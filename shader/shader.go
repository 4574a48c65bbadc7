package shader

// All sources are GLSL ES 3.00 (the WebGL2 dialect). They are translated to
// the context's native dialect before compilation.

// ─────────────────────────────────── line ───────────────────────────────────

const lineVertexSource = `#version 300 es

uniform mat4 screenTransform;

in vec2 position;
in vec2 normal;
in vec3 color;

out vec2 positionF;
out vec2 normalF;
out vec3 colorF;

void main()
{
    positionF = position;
    normalF = normal;
    colorF = color;
    gl_Position = screenTransform * vec4(position + normal, 0.0, 1.0);
}
`

const lineFragmentSource = `#version 300 es
precision highp float;

in vec2 positionF;
in vec2 normalF;
in vec3 colorF;

out vec4 fragColor;

void main()
{
    fragColor = vec4(colorF, 1.0);
}
`

// ────────────────────────────────── circle ──────────────────────────────────

const circleVertexSource = `#version 300 es

uniform mat4 screenTransform;

in vec2 centerPoint;
in vec2 diff;
in vec3 color;
in float radius;

out vec2 diffF;
out vec3 colorF;
out float radiusF;

void main()
{
    diffF = radius * diff;
    colorF = color;
    radiusF = radius;
    vec2 position = centerPoint + radius * diff;
    gl_Position = screenTransform * vec4(position, 0.0, 1.0);
}
`

// Discards everything outside the disc inscribed in the quad.
const circleFragmentSource = `#version 300 es
precision highp float;

in vec2 diffF;
in vec3 colorF;
in float radiusF;

out vec4 fragColor;

void main()
{
    float d = length(diffF);
    if (d > radiusF)
        discard;
    fragColor = vec4(colorF, 1.0);
}
`

// ──────────────────────────────────── arc ───────────────────────────────────

const arcVertexSource = `#version 300 es

uniform mat4 screenTransform;

in vec2 startPoint;
in vec2 centerPoint;
in vec2 position;
in vec3 color;
in float diffAngle;
in float radius;

out vec2 startPointF;
out vec2 centerPointF;
out vec2 positionF;
out vec3 colorF;
out float diffAngleF;
out float radiusF;

void main()
{
    startPointF = startPoint;
    centerPointF = centerPoint;
    positionF = position;
    colorF = color;
    diffAngleF = diffAngle;
    radiusF = radius;
    gl_Position = screenTransform * vec4(position, 0.0, 1.0);
}
`

// The winding and angle helpers must match geometry.WindingOrder and
// geometry.Angle, otherwise the drawn sector flips.
const arcFragmentSource = `#version 300 es
precision highp float;

in vec2 startPointF;
in vec2 centerPointF;
in vec2 positionF;
in vec3 colorF;
in float diffAngleF;
in float radiusF;

out vec4 fragColor;

const float PI = 3.14159265359;

int compute_winding_order(vec2 p, vec2 q, vec2 r)
{
    float area = 0.0;
    area += (q.x - p.x) * (q.y + p.y);
    area += (r.x - q.x) * (r.y + q.y);
    area += (p.x - r.x) * (p.y + r.y);
    return int(area > 0.0) - int(area < 0.0);
}

float compute_angle(vec2 p, vec2 q)
{
    return acos(clamp(dot(p, q) / (length(p) * length(q)), -1.0, 1.0));
}

// angle from p to q in [0, 2*PI)
float compute_full_angle(vec2 p, vec2 q)
{
    float angle = compute_angle(p, q);
    if (compute_winding_order(p, vec2(0.0), q) == -1)
        angle = 2.0 * PI - angle;
    return angle;
}

void main()
{
    if (distance(positionF, centerPointF) > radiusF)
        discard;
    if (diffAngleF < 0.0) {
        float angle = -compute_full_angle(positionF - centerPointF, startPointF - centerPointF);
        if (angle < diffAngleF || angle > 0.0)
            discard;
    } else {
        float angle = compute_full_angle(startPointF - centerPointF, positionF - centerPointF);
        if (angle < 0.0 || angle > diffAngleF)
            discard;
    }
    fragColor = vec4(colorF, 0.2);
}
`

// ─────────────────────────────────── v3 ─────────────────────────────────────

const v3VertexSource = `#version 300 es

uniform mat4 screenTransform;

in vec3 position;
in vec3 normal;
in vec3 color;

out vec3 positionF;
out vec3 normalF;
out vec3 colorF;

void main()
{
    positionF = position;
    normalF = normal;
    colorF = color;
    gl_Position = screenTransform * vec4(position, 1.0);
}
`

// "test" is declared but never read, so it is optimised out at link time.
const v3FragmentSource = `#version 300 es
precision highp float;

uniform mat4 test;
uniform mat4 screenTransform;

in vec3 positionF;
in vec3 normalF;
in vec3 colorF;

out vec4 fragColor;

float compute_diffuse_strength(vec3 lightPos, vec3 surfacePoint, vec3 normalizedSurfaceNormal)
{
    vec3 lightToSurface = normalize(surfacePoint - lightPos);
    return clamp(dot(lightToSurface, normalizedSurfaceNormal), 0.0, 1.0);
}

void main()
{
    vec3 light = (vec4(5.0, 5.0, -3.5, 1.0) * screenTransform).xyz;
    vec3 normal = normalize(normalF);
    float diffuseStrength = compute_diffuse_strength(light, positionF, normal);
    float lightIntensity = clamp(0.5 + diffuseStrength, 0.0, 1.0);
    fragColor = vec4(lightIntensity * colorF, 1.0);
}
`
