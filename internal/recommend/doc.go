// Package recommend turns criterion scores and raw audit signals into a
// prioritized list of actionable recommendations. Two sources feed the
// list: one tiered message per criterion, and independent data-driven
// threshold rules over the signal bundle. The merged list is sorted by
// tier with the most urgent entries first.
package recommend
